package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// sender is the part of *tgbotapi.BotAPI the notifier needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

// NotifyBookingCreated tells the owner about a new booking request.
func (n *TelegramNotifier) NotifyBookingCreated(
	ctx context.Context,
	owner *domain.User,
	listing *domain.Listing,
	bookings []*domain.Booking,
) {
	beds := "the room"
	if len(bookings) > 1 || (len(bookings) == 1 && bookings[0].BedID != nil) {
		beds = fmt.Sprintf("%d bed(s)", len(bookings))
	}

	var date string
	if len(bookings) > 0 {
		date = bookings[0].BookingDate.Format("02.01.2006")
	}

	text := fmt.Sprintf(
		"*New booking request*\n\n"+"Listing: %s\n"+"Requested: %s\n"+"Move-in: %s\n\n"+"Approve or reject it in PG Finder.",
		escape(listing.Name), beds, date,
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, tenant *domain.User, listing *domain.Listing) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Listing: %s\n"+"Address: %s",
		escape(listing.Name), escape(listing.Address),
	)
	n.send(ctx, tenant.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, tenant *domain.User, listing *domain.Listing) {
	text := fmt.Sprintf(
		"*Booking rejected*\n\n"+"Listing: %s",
		escape(listing.Name),
	)
	n.send(ctx, tenant.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, strings.TrimSpace(s))
}
