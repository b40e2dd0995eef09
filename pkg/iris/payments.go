package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
)

// Payment is a processed transaction. Read-only from the SDK side.
type Payment struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentsService lists processed payments.
type PaymentsService struct {
	client *client.Client
	logger hclog.Logger
}

func (s *PaymentsService) List(ctx context.Context) ([]Payment, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/payments", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	payments := make([]Payment, 0, len(items))
	for _, item := range items {
		var payment Payment
		if err := decodeModel(item, &payment); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (s *PaymentsService) Get(ctx context.Context, id string) (*Payment, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/payments/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var payment Payment
	if err := decodeModel(obj, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
