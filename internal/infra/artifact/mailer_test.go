//go:build unit

package artifact_test

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"transfer-booking/internal/infra/artifact"
	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smtpServer accepts connections on a loopback port. With silent set it never sends the
// greeting; otherwise it speaks just enough SMTP to accept one message.
type smtpServer struct {
	ln     net.Listener
	silent bool

	mu    sync.Mutex
	conns []net.Conn
	data  []string
	rcpts []string
}

func startSMTPServer(t *testing.T, silent bool) *smtpServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &smtpServer{ln: ln, silent: silent}
	go s.serve()
	t.Cleanup(func() {
		_ = ln.Close()
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, c := range s.conns {
			_ = c.Close()
		}
	})
	return s
}

func (s *smtpServer) port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *smtpServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns = append(s.conns, conn)
		s.mu.Unlock()
		if !s.silent {
			go s.converse(conn)
		}
	}
}

func (s *smtpServer) converse(conn net.Conn) {
	r := bufio.NewReader(conn)
	reply := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }

	reply("220 localhost ESMTP test")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			reply("250 localhost")
		case strings.HasPrefix(cmd, "RCPT TO:"):
			s.mu.Lock()
			s.rcpts = append(s.rcpts, strings.TrimSpace(line[len("RCPT TO:"):]))
			s.mu.Unlock()
			reply("250 OK")
		case cmd == "DATA":
			reply("354 end with <CRLF>.<CRLF>")
			var body strings.Builder
			for {
				l, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				body.WriteString(l)
			}
			s.mu.Lock()
			s.data = append(s.data, body.String())
			s.mu.Unlock()
			reply("250 OK queued")
		case cmd == "QUIT":
			reply("221 bye")
			return
		default:
			reply("250 OK")
		}
	}
}

func (s *smtpServer) messages() ([]string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.data...), append([]string(nil), s.rcpts...)
}

func smtpConfig(port int) config.MailConfig {
	cfg := config.NewTestConfig().Mail
	cfg.Driver = "smtp"
	cfg.SMTPHost = "127.0.0.1"
	cfg.SMTPPort = port
	cfg.SMTPTLSPolicy = "none"
	cfg.SMTPTimeout = time.Minute
	return cfg
}

func testMessage() artifact.Message {
	return artifact.Message{
		From:    "bookings@test.local",
		To:      []string{"alex@example.com"},
		Subject: "Booking confirmed",
		Body:    "See you at the airport",
		Attachments: []artifact.Attachment{
			{Filename: "INV-20260314-ABCDEF12.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.3")},
		},
	}
}

func TestSMTPMailer_Send(t *testing.T) {
	srv := startSMTPServer(t, false)

	err := artifact.NewSMTPMailer(smtpConfig(srv.port())).Send(context.Background(), testMessage())
	require.NoError(t, err)

	data, rcpts := srv.messages()
	require.Len(t, data, 1)
	assert.Contains(t, data[0], "Subject: Booking confirmed")
	assert.Contains(t, data[0], "INV-20260314-ABCDEF12.pdf")
	assert.Equal(t, []string{"<alex@example.com>"}, rcpts)
}

func TestSMTPMailer_SendStopsWithContext(t *testing.T) {
	tests := []struct {
		name    string
		ctx     func() (context.Context, context.CancelFunc)
		wantErr error
	}{
		{
			name: "deadline",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 200*time.Millisecond)
			},
			wantErr: context.DeadlineExceeded,
		},
		{
			name: "cancellation",
			ctx: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				time.AfterFunc(200*time.Millisecond, cancel)
				return ctx, cancel
			},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := startSMTPServer(t, true)
			ctx, cancel := tt.ctx()
			defer cancel()

			start := time.Now()
			err := artifact.NewSMTPMailer(smtpConfig(srv.port())).Send(ctx, testMessage())

			require.Error(t, err)
			assert.Less(t, time.Since(start), 3*time.Second)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSMTPMailer_SendTimesOutWithoutDeadline(t *testing.T) {
	srv := startSMTPServer(t, true)
	cfg := smtpConfig(srv.port())
	cfg.SMTPTimeout = 300 * time.Millisecond

	start := time.Now()
	err := artifact.NewSMTPMailer(cfg).Send(context.Background(), testMessage())

	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}
