package smtp

import (
	"io"
	"strings"
	"testing"

	"github.com/emersion/go-sasl"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSmtp(t *testing.T) {
	t.Run(`buildMessage check`, func(t *testing.T) {
		msg, err := buildMessage("Trip approval", "<p>hello</p>", "travel@dfo.local", []string{"a@dfo.local", "b@dfo.local"})
		require.Nil(t, err)
		text := string(msg)
		require.Contains(t, text, "From: travel@dfo.local\r\n")
		require.Contains(t, text, "To: a@dfo.local, b@dfo.local\r\n")
		require.Contains(t, text, "Subject: Trip approval\r\n")
		require.Contains(t, text, "Content-Type: text/html; charset=UTF-8\r\n")
		require.Contains(t, text, "<p>hello</p>")
	})

	t.Run(`header line breaks check`, func(t *testing.T) {
		msg, err := buildMessage(
			"Trip - Conf\r\nBcc: evil@example.com",
			"<p>hello</p>",
			"travel@dfo.local\r\nCc: evil@example.com",
			[]string{"a@dfo.local\nBcc: evil@example.com"},
		)
		require.Nil(t, err)
		text := string(msg)
		require.Contains(t, text, "Subject: Trip - ConfBcc: evil@example.com\r\n")
		require.NotContains(t, text, "\r\nBcc:")
		require.NotContains(t, text, "\r\nCc:")
		headers := text[:strings.Index(text, "\r\n\r\n")]
		require.Equal(t, 1, strings.Count(headers, "Content-Type:"))
	})

	t.Run(`non-ascii subject check`, func(t *testing.T) {
		msg, err := buildMessage("Réunion annuelle", "<p>bonjour</p>", "travel@dfo.local", []string{"a@dfo.local"})
		require.Nil(t, err)
		require.Contains(t, string(msg), "Subject: =?UTF-8?q?R=C3=A9union_annuelle?=\r\n")
	})

	t.Run(`not configured check`, func(t *testing.T) {
		called := false
		i := impl{sendFunc: func(addr string, a sasl.Client, from string, to []string, r io.Reader, tlsEnabled bool) error {
			called = true
			return nil
		}}
		err := i.SendHTML("subject", "body", "from@dfo.local", []string{"to@dfo.local"})
		require.Nil(t, err)
		require.False(t, called)
	})

	t.Run(`send check`, func(t *testing.T) {
		var gotAddr, gotFrom, gotBody string
		var gotTo []string
		i := impl{
			user:       "robot@dfo.local",
			password:   "secret",
			host:       "smtp.dfo.local",
			port:       "465",
			tlsEnabled: true,
			sendFunc: func(addr string, a sasl.Client, from string, to []string, r io.Reader, tlsEnabled bool) error {
				gotAddr = addr
				gotFrom = from
				gotTo = to
				body, err := io.ReadAll(r)
				gotBody = string(body)
				require.True(t, tlsEnabled)
				return err
			},
		}
		err := i.SendHTML("subject", "<b>body</b>", "travel@dfo.local", []string{"to@dfo.local"})
		require.Nil(t, err)
		require.Equal(t, "smtp.dfo.local:465", gotAddr)
		require.Equal(t, "robot@dfo.local", gotFrom)
		require.Equal(t, []string{"to@dfo.local"}, gotTo)
		require.Contains(t, gotBody, "<b>body</b>")
	})

	t.Run(`transport error check`, func(t *testing.T) {
		i := impl{
			user: "robot@dfo.local",
			host: "smtp.dfo.local",
			port: "25",
			sendFunc: func(addr string, a sasl.Client, from string, to []string, r io.Reader, tlsEnabled bool) error {
				return errors.New("connection refused")
			},
		}
		err := i.SendHTML("subject", "body", "travel@dfo.local", []string{"to@dfo.local"})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "connection refused")
	})

	t.Run(`empty recipients check`, func(t *testing.T) {
		i := impl{}
		err := i.SendHTML("subject", "body", "travel@dfo.local", nil)
		require.NotNil(t, err)
	})
}
