package e2e

import (
	"chat-relay/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/stretchr/testify/suite"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type testPaidMessageSuite struct {
	BaseRelaySuite
}

func TestPaidMessageSuite(t *testing.T) {
	suite.Run(t, &testPaidMessageSuite{})
}

func (s *testPaidMessageSuite) TestRelayIsUp() {
	s.Run("Step 1: Welcome route answers", func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/", s.Config.RelayAddr))
		s.Require().NoError(err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		s.Require().NoError(err)
		s.JSONEq(`{"msg":"Welcome agent"}`, string(body))
	})

	s.Run("Step 2: Subscription is live", func() {
		s.WithHealth("Check relay health", func(ctx context.Context, client healthpb.HealthClient) {
			resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
			s.Require().NoError(err)
			s.Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		})
	})
}

func (s *testPaidMessageSuite) TestPaidMessageFlow() {
	if s.Config.PaymentTxID == "" {
		s.T().Skip("E2E_PAYMENT_TX_ID not set")
	}
	sender, err := domain.PayerAccount(s.Config.PaymentTxID)
	s.Require().NoError(err)
	text := fmt.Sprintf("e2e %d", time.Now().UnixNano())

	s.WithSocket("Submit a paid message", func(conn *websocket.Conn) {
		s.NextEvent(conn, domain.EventConnect, 5*time.Second)
		s.Send(conn, domain.EventMessage, domain.InboundMessage{Text: text, PaymentTxID: s.Config.PaymentTxID})

		// Consensus takes a few seconds; the echo and the reply arrive from the log.
		var first, second domain.MessageBroadcast
		s.Require().NoError(json.Unmarshal(s.NextEvent(conn, domain.EventMessage, time.Minute).Data, &first))
		s.Require().NoError(json.Unmarshal(s.NextEvent(conn, domain.EventMessage, time.Minute).Data, &second))
		s.Equal(text, first.Message)
		s.Equal(sender, first.From)
		s.NotEmpty(second.Message)
	})

	s.WithSocket("Replay the same payment", func(conn *websocket.Conn) {
		s.NextEvent(conn, domain.EventConnect, 5*time.Second)
		s.Send(conn, domain.EventMessage, domain.InboundMessage{Text: text, PaymentTxID: s.Config.PaymentTxID})

		s.Require().NoError(conn.SetReadDeadline(time.Now().Add(15 * time.Second)))
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var frame domain.Frame
			s.Require().NoError(json.Unmarshal(data, &frame))
			s.NotEqual(domain.EventMessage, frame.Event, "replayed payment was published again: %s", frame.Data)
		}
	})
}

