package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rideform/internal/repositories/interfaces"
	"rideform/internal/services"
	"rideform/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const recentLimit = 5

// Free-text shortcuts, matched case-insensitively against the exact phrase.
// The same phrases label the reply keyboard buttons.
const (
	shortcutCount = "How many requests?"
	shortcutLast  = "Last 5"
)

const (
	replyDenied      = "Access denied."
	replyMenu        = "Ready. Available actions:"
	replyEmpty       = "Nothing yet."
	replyDeleteUsage = "Usage: /delete <id>"
	replyBadID       = "Malformed id."
	replyDeleted     = "Deleted."
	replyNotFound    = "Not found."
	replyError       = "Something went wrong."
	replyUnknown     = "Command not understood. Try /count, /last, /delete <id>."
)

type command int

const (
	cmdUnknown command = iota
	cmdStart
	cmdCount
	cmdLast
	cmdDelete
)

var menuKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(shortcutCount)),
	tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(shortcutLast)),
)

// Router polls the operator chat and serves moderation commands against the
// same store the intake service writes to. It owns no mutable state beyond
// the allow-list; every handler is idempotent and safe to run concurrently.
type Router struct {
	bot         *tgbotapi.BotAPI
	repo        interfaces.RideRequestRepository
	allowed     map[string]struct{}
	pollTimeout time.Duration
	logger      *logger.Logger
}

func NewRouter(api *tgbotapi.BotAPI, repo interfaces.RideRequestRepository, allowedIDs []string, pollTimeout time.Duration, log *logger.Logger) *Router {
	allowed := make(map[string]struct{}, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = struct{}{}
	}

	return &Router{
		bot:         api,
		repo:        repo,
		allowed:     allowed,
		pollTimeout: pollTimeout,
		logger:      log,
	}
}

// Run long-polls until ctx is cancelled. Messages are handled concurrently;
// handlers must not assume serialized store access.
func (r *Router) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(r.pollTimeout.Seconds())
	updates := r.bot.GetUpdatesChan(u)

	r.logger.Info("admin bot polling for commands")

	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			go r.handle(ctx, update.Message)
		}
	}
}

func (r *Router) handle(ctx context.Context, msg *tgbotapi.Message) {
	reply := r.Respond(ctx, msg.From.ID, msg.Text)

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ReplyMarkup = menuKeyboard
	if _, err := r.bot.Send(out); err != nil {
		r.logger.WithError(err).Error("failed to send reply")
	}
}

// Respond maps one operator message to one reply. The allow-list check runs
// before anything touches the store.
func (r *Router) Respond(ctx context.Context, senderID int64, text string) string {
	if !r.isAllowed(senderID) {
		return replyDenied
	}

	cmd, arg := parseCommand(text)
	switch cmd {
	case cmdStart:
		return replyMenu
	case cmdCount:
		return r.respondCount(ctx)
	case cmdLast:
		return r.respondLast(ctx)
	case cmdDelete:
		return r.respondDelete(ctx, arg)
	default:
		return replyUnknown
	}
}

// An empty allow-list permits everyone. Deliberately fail-open: the list is
// an operational convenience, not the security boundary.
func (r *Router) isAllowed(senderID int64) bool {
	if len(r.allowed) == 0 {
		return true
	}
	_, ok := r.allowed[strconv.FormatInt(senderID, 10)]
	return ok
}

func (r *Router) respondCount(ctx context.Context) string {
	count, err := r.repo.Count(ctx)
	if err != nil {
		r.logger.WithError(err).Error("count command failed")
		return replyError
	}
	return fmt.Sprintf("Requests: %d", count)
}

func (r *Router) respondLast(ctx context.Context) string {
	records, err := r.repo.FindRecent(ctx, recentLimit)
	if err != nil {
		r.logger.WithError(err).Error("last command failed")
		return replyError
	}
	if len(records) == 0 {
		return replyEmpty
	}

	parts := make([]string, 0, len(records))
	for _, record := range records {
		parts = append(parts, services.FormatRideRequest(record))
	}
	return strings.Join(parts, "\n\n")
}

func (r *Router) respondDelete(ctx context.Context, arg string) string {
	if arg == "" {
		return replyDeleteUsage
	}

	id, err := primitive.ObjectIDFromHex(arg)
	if err != nil {
		return replyBadID
	}

	deleted, err := r.repo.DeleteByID(ctx, id)
	if err != nil {
		r.logger.WithError(err).Error("delete command failed")
		return replyError
	}
	if !deleted {
		return replyNotFound
	}
	return replyDeleted
}

func parseCommand(text string) (command, string) {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "/") {
		fields := strings.Fields(trimmed)
		name := strings.TrimPrefix(fields[0], "/")
		// Group chats address commands as /cmd@botname.
		if i := strings.Index(name, "@"); i >= 0 {
			name = name[:i]
		}

		switch strings.ToLower(name) {
		case "start":
			return cmdStart, ""
		case "count":
			return cmdCount, ""
		case "last":
			return cmdLast, ""
		case "delete":
			arg := ""
			if len(fields) > 1 {
				arg = fields[1]
			}
			return cmdDelete, arg
		}
		return cmdUnknown, ""
	}

	switch strings.ToLower(trimmed) {
	case strings.ToLower(shortcutCount):
		return cmdCount, ""
	case strings.ToLower(shortcutLast):
		return cmdLast, ""
	}
	return cmdUnknown, ""
}
