// Package bot is the Discord front end. One handler registration at
// process init; each inbound claim runs the pipeline on its own
// goroutine and produces exactly one history record whichever terminal
// state it reaches.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/sentra-id/cekfakta/src/config"
	"github.com/sentra-id/cekfakta/src/history"
	"github.com/sentra-id/cekfakta/src/models"
	"github.com/sentra-id/cekfakta/src/pipeline"
	"github.com/sentra-id/cekfakta/src/verdict"
)

const (
	commandPrefix = "!cek "

	msgInProgress  = "🔎 Sedang mencari referensi di internet..."
	msgNoEvidence  = "Tidak ditemukan berita terkait. AI tidak dapat memverifikasi."
	msgSystemError = "Terjadi kesalahan sistem saat memverifikasi klaim. Coba lagi nanti."
)

// transport is the slice of chat operations the claim flow needs.
type transport interface {
	Send(channelID, content string) (*discordgo.Message, error)
	Edit(channelID, messageID, content string) error
	Delete(channelID, messageID string) error
}

// recorder appends one interaction per processed message.
type recorder interface {
	Append(rec models.Interaction)
}

// sessionTransport adapts a discordgo session to the transport surface.
type sessionTransport struct {
	session *discordgo.Session
}

func (t sessionTransport) Send(channelID, content string) (*discordgo.Message, error) {
	return t.session.ChannelMessageSend(channelID, content)
}

func (t sessionTransport) Edit(channelID, messageID, content string) error {
	_, err := t.session.ChannelMessageEdit(channelID, messageID, content)
	return err
}

func (t sessionTransport) Delete(channelID, messageID string) error {
	return t.session.ChannelMessageDelete(channelID, messageID)
}

type Bot struct {
	config  *config.Config
	session *discordgo.Session
	pipe    *pipeline.Pipeline
	history *history.Logger
}

func New(cfg *config.Config, pipe *pipeline.Pipeline, hist *history.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	bot := &Bot{
		config:  cfg,
		session: session,
		pipe:    pipe,
		history: hist,
	}

	bot.initHandlers()
	return bot, nil
}

func (b *Bot) initHandlers() {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Cek Fakta Bot logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})

	b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author.ID == s.State.User.ID {
			return
		}

		content := strings.TrimSpace(m.Content)
		if strings.HasPrefix(content, commandPrefix) {
			b.handleClaim(s, m, strings.TrimSpace(strings.TrimPrefix(content, commandPrefix)))
		}
	})
}

func (b *Bot) handleClaim(s *discordgo.Session, m *discordgo.MessageCreate, claim string) {
	t := sessionTransport{session: s}

	if claim == "" {
		t.Send(m.ChannelID, "Tulis klaim yang mau dicek: `!cek <judul atau isi berita>`")
		return
	}

	traceID := uuid.NewString()
	log.Printf("claim received trace=%s user=%s", traceID, m.Author.ID)

	placeholder, err := t.Send(m.ChannelID, msgInProgress)
	if err != nil {
		log.Printf("failed to send placeholder trace=%s: %v", traceID, err)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), b.config.PipelineTimeout)
		defer cancel()

		out := b.pipe.Process(ctx, claim)

		rec := models.Interaction{
			TraceID:     traceID,
			UserID:      m.Author.ID,
			Username:    m.Author.Username,
			DisplayName: displayName(m),
			Question:    claim,
			Answer:      out.Answer,
			Verdict:     out.Verdict,
			CreatedAt:   time.Now(),
		}

		resolveOutcome(t, b.history, m.ChannelID, placeholder, m.Author.ID, out, rec)
		log.Printf("claim resolved trace=%s verdict=%s", traceID, rec.Verdict)
	}()
}

// resolveOutcome applies the terminal side effects for one processed
// claim. Whichever branch runs, exactly one history record is appended,
// after the reply went out.
func resolveOutcome(t transport, rec recorder, channelID string, placeholder *discordgo.Message, userID string, out pipeline.Outcome, record models.Interaction) {
	switch {
	case out.NoEvidence:
		editOrSend(t, channelID, placeholder, msgNoEvidence)

	case out.Err != nil:
		deletePlaceholder(t, channelID, placeholder)
		if errors.Is(out.Err, verdict.ErrModelUnavailable) {
			// Model exhaustion is an expected failure: generic message only.
			t.Send(channelID, msgSystemError)
		} else {
			t.Send(channelID, fmt.Sprintf("%s\n`%v`", msgSystemError, out.Err))
		}

	default:
		deletePlaceholder(t, channelID, placeholder)
		for _, chunk := range splitMessage(buildReply(userID, out)) {
			t.Send(channelID, chunk)
		}
	}

	rec.Append(record)
}

func editOrSend(t transport, channelID string, placeholder *discordgo.Message, text string) {
	if placeholder != nil {
		if err := t.Edit(channelID, placeholder.ID, text); err == nil {
			return
		}
	}
	t.Send(channelID, text)
}

func deletePlaceholder(t transport, channelID string, placeholder *discordgo.Message) {
	if placeholder == nil {
		return
	}
	if err := t.Delete(channelID, placeholder.ID); err != nil {
		log.Printf("failed to delete placeholder: %v", err)
	}
}

func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	return nil
}

func (b *Bot) Stop() {
	if b.session != nil {
		b.session.Close()
	}
}
