package artifact

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"slices"
	"strings"
	"time"

	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

const defaultSMTPTimeout = 30 * time.Second

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer picks the SMTP mailer for MAIL_DRIVER=smtp and the log mailer otherwise.
func NewMailer(cfg config.MailConfig) Mailer {
	if cfg.Driver == "smtp" {
		return NewSMTPMailer(cfg)
	}
	return NewLogMailer()
}

// LogMailer writes messages to the structured log instead of delivering them.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.Filename)
	}
	slog.InfoContext(ctx, "mail",
		slog.String("to", strings.Join(msg.To, ",")),
		slog.String("subject", msg.Subject),
		slog.Any("attachments", names),
		slog.Int("body_bytes", len(msg.Body)))
	return nil
}

type SMTPMailer struct {
	host    string
	addr    string
	timeout time.Duration
	options []mail.Option
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	timeout := cfg.SMTPTimeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(tlsPolicy(cfg.SMTPTLSPolicy)),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	return &SMTPMailer{
		host:    cfg.SMTPHost,
		addr:    cfg.SMTPAddr(),
		timeout: timeout,
		options: opts,
	}
}

func tlsPolicy(name string) mail.TLSPolicy {
	switch strings.ToLower(name) {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}

// Send delivers msg over one SMTP session. The connection is closed as soon as ctx ends and
// never outlives the configured timeout.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return errs.New("mail has no recipients")
	}

	out, err := BuildMessage(msg)
	if err != nil {
		return err
	}

	release := func() bool { return false }
	dial := func(dialCtx context.Context, network, address string) (net.Conn, error) {
		conn, err := (&net.Dialer{}).DialContext(dialCtx, network, address)
		if err != nil {
			return nil, err
		}
		if err := conn.SetDeadline(time.Now().Add(m.timeout)); err != nil {
			_ = conn.Close()
			return nil, err
		}
		release = context.AfterFunc(ctx, func() { _ = conn.Close() })
		return conn, nil
	}

	client, err := mail.NewClient(m.host, append(slices.Clone(m.options), mail.WithDialContextFunc(dial))...)
	if err != nil {
		return errs.Wrapf(err, "configure smtp client for %s", m.addr)
	}
	defer func() { release() }()

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		err = errs.Wrapf(err, "smtp send via %s", m.addr)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errs.Mark(err, ctxErr)
		}
		return err
	}
	return nil
}

// BuildMessage turns msg into a plain-text mail with its attachments.
func BuildMessage(msg Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(msg.From); err != nil {
		return nil, errs.Wrapf(err, "invalid sender %q", msg.From)
	}
	if err := out.To(msg.To...); err != nil {
		return nil, errs.Wrap(err, "invalid recipients")
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)

	for _, a := range msg.Attachments {
		err := out.AttachReader(a.Filename, bytes.NewReader(a.Data),
			mail.WithFileContentType(mail.ContentType(a.ContentType)))
		if err != nil {
			return nil, errs.Wrapf(err, "attach %s", a.Filename)
		}
	}
	return out, nil
}
