package sheets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/id"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Tab layout A–R: id, placedAt, buyer name, buyer email, shipping
// name/email/phone/address, "city, country", payment method, jersey
// name, jersey number, subtotal, shipping, total, items JSON, shipping
// JSON, full payload JSON. Column R drives listing reconstruction; the
// readable columns exist for humans looking at the sheet.
const (
	ordersTab       = "Orders"
	ordersDataRange = ordersTab + "!A2:R"
)

// OrderStore is the append-only checkout ledger in the Orders tab.
type OrderStore struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewOrderStore(svc *sheetsapi.Service, spreadsheetID string) *OrderStore {
	return &OrderStore{svc: svc, spreadsheetID: spreadsheetID}
}

// Append assigns a fresh id to the payload and appends one row.
func (s *OrderStore) Append(ctx context.Context, payload domain.OrderPayload) (*domain.StoredOrder, error) {
	stored := domain.StoredOrder{ID: id.New(), OrderPayload: payload}

	itemsJSON, err := json.Marshal(payload.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	shippingJSON, err := json.Marshal(payload.Shipping)
	if err != nil {
		return nil, fmt.Errorf("marshal order shipping: %w", err)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order payload: %w", err)
	}

	row := []interface{}{
		stored.ID,
		payload.PlacedAt,
		payload.User.FullName,
		payload.User.Email,
		payload.Shipping.FullName,
		payload.Shipping.Email,
		payload.Shipping.Phone,
		payload.Shipping.Address,
		fmt.Sprintf("%s, %s", payload.Shipping.City, payload.Shipping.Country),
		payload.Shipping.PaymentMethod,
		payload.Shipping.JerseyName,
		payload.Shipping.JerseyNumber,
		payload.Totals.Subtotal,
		payload.Totals.Shipping,
		payload.Totals.Total,
		string(itemsJSON),
		string(shippingJSON),
		string(payloadJSON),
	}
	_, err = s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, ordersTab+"!A1", &sheetsapi.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("append order row: %w", err)
	}
	return &stored, nil
}

// List rebuilds every order from the payload JSON column. Rows whose
// JSON fails to parse are skipped, never fatal — a half-edited sheet
// must not take the admin view down.
func (s *OrderStore) List(ctx context.Context) ([]domain.StoredOrder, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, ordersDataRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read order rows: %w", err)
	}
	orders := make([]domain.StoredOrder, 0, len(resp.Values))
	for _, row := range resp.Values {
		if o, ok := orderFromRow(row); ok {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// orderFromRow reconstructs a StoredOrder from one sheet row. The
// payload JSON lives in column R but older rows may be shorter, so the
// last cell is the fallback.
func orderFromRow(row []interface{}) (domain.StoredOrder, bool) {
	payloadJSON := cellString(row, 17)
	if payloadJSON == "" && len(row) > 0 {
		payloadJSON = cellString(row, len(row)-1)
	}
	if payloadJSON == "" {
		return domain.StoredOrder{}, false
	}
	var payload domain.OrderPayload
	if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
		return domain.StoredOrder{}, false
	}
	orderID := cellString(row, 0)
	if orderID == "" {
		orderID = payload.User.ID
	}
	if orderID == "" {
		orderID = id.New()
	}
	return domain.StoredOrder{ID: orderID, OrderPayload: payload}, true
}
