package services

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"rideform/internal/config"
	"rideform/internal/models"
	"rideform/internal/utils"
	"rideform/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	notifyQueueSize = 64
	notifyWorkers   = 4
)

// NotificationService delivers a human-readable summary of a freshly
// persisted record to the operator channel. Delivery is best-effort: the
// caller never blocks past enqueue and never observes the outcome.
type NotificationService interface {
	Schedule(record *models.RideRequest)
}

type telegramNotifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	topicID int
	jobs    chan *models.RideRequest
	logger  *logger.Logger
}

// NewTelegramNotifier builds the dispatcher, or a no-op one when the channel
// credentials are absent. The outbound client carries a short fixed timeout
// so a stalled Telegram API cannot accumulate unbounded background work.
func NewTelegramNotifier(cfg *config.TelegramConfig, log *logger.Logger) (NotificationService, error) {
	if !cfg.Enabled() {
		log.Info("telegram credentials absent, notifications disabled")
		return &noopNotifier{}, nil
	}

	client := &http.Client{Timeout: cfg.SendTimeout}
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	n := &telegramNotifier{
		bot:     bot,
		chatID:  cfg.ChatID,
		topicID: cfg.TopicID,
		jobs:    make(chan *models.RideRequest, notifyQueueSize),
		logger:  log,
	}
	for i := 0; i < notifyWorkers; i++ {
		go n.worker()
	}
	return n, nil
}

func (n *telegramNotifier) Schedule(record *models.RideRequest) {
	select {
	case n.jobs <- record:
	default:
		// Queue full. Dropping is the contract: persistence must never
		// wait on the operator channel.
		n.logger.WithField("id", record.ID.Hex()).Warn("notification queue full, dropping")
	}
}

func (n *telegramNotifier) worker() {
	for record := range n.jobs {
		n.send(record)
	}
}

func (n *telegramNotifier) send(record *models.RideRequest) {
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", n.chatID)
	params.AddNonZero("message_thread_id", n.topicID)
	params["text"] = "New ride request\n" + FormatRideRequest(record)

	// MakeRequest surfaces network failures, non-2xx responses and an
	// explicit ok:false acknowledgement as a single error.
	if _, err := n.bot.MakeRequest("sendMessage", params); err != nil {
		n.logger.WithError(err).WithField("id", record.ID.Hex()).Error("failed to send notification")
	}
}

type noopNotifier struct{}

func (n *noopNotifier) Schedule(record *models.RideRequest) {}

// FormatRideRequest renders the fixed template used for both new-record
// notifications and the admin bot's listing.
func FormatRideRequest(record *models.RideRequest) string {
	people := record.People
	if people < 1 {
		people = 1
	}

	lines := []string{
		"id: " + record.ID.Hex(),
		"name: " + record.Name,
		"phone: " + record.Phone,
		"tg: " + utils.DisplayTelegramHandle(record.Telegram),
		"when: " + record.Day + " " + record.EarliestTime,
		fmt.Sprintf("people: %d", people),
		"address: " + record.StartPoint.Address,
	}

	if record.StartPoint.Lat != 0 || record.StartPoint.Lon != 0 {
		lines = append(lines, fmt.Sprintf("map: https://maps.google.com/?q=%v,%v",
			record.StartPoint.Lat, record.StartPoint.Lon))
	}

	if record.CreatedAt != "" {
		lines = append(lines, "created: "+displayCreatedAt(record.CreatedAt))
	}

	return strings.Join(lines, "\n")
}

// Malformed stored timestamps are shown raw rather than failing the render.
func displayCreatedAt(created string) string {
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		return t.Format("2006-01-02 15:04")
	}
	return created
}
