package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payloadCell = `{"user":{"id":"u1","fullName":"Ada","email":"a@b.com"},"items":[{"id":"kit-aurora-home","name":"Aurora FC Home","size":"M","price":89.99,"quantity":1}],"totals":{"subtotal":89.99,"shipping":5,"total":94.99},"shipping":{"fullName":"Ada","email":"a@b.com","city":"Lisbon","country":"PT","paymentMethod":"card"},"placedAt":"2026-09-01T10:00:00Z"}`

func fullRow(id, payload string) []interface{} {
	return []interface{}{
		id, "2026-09-01T10:00:00Z", "Ada", "a@b.com",
		"Ada", "a@b.com", "", "", "Lisbon, PT", "card", "", "",
		89.99, 5.0, 94.99, "[]", "{}", payload,
	}
}

func TestOrderFromRow_FullRow(t *testing.T) {
	o, ok := orderFromRow(fullRow("ord1", payloadCell))
	require.True(t, ok)
	assert.Equal(t, "ord1", o.ID)
	assert.Equal(t, "a@b.com", o.User.Email)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "kit-aurora-home", o.Items[0].ID)
	assert.Equal(t, 94.99, o.Totals.Total)
}

func TestOrderFromRow_ShortRowFallsBackToLastCell(t *testing.T) {
	row := []interface{}{"ord2", "2026-09-01T10:00:00Z", payloadCell}

	o, ok := orderFromRow(row)
	require.True(t, ok)
	assert.Equal(t, "ord2", o.ID)
	assert.Equal(t, "Ada", o.User.FullName)
}

func TestOrderFromRow_MissingIDFallsBackToPayloadUser(t *testing.T) {
	o, ok := orderFromRow(fullRow("", payloadCell))
	require.True(t, ok)
	assert.Equal(t, "u1", o.ID)
}

func TestOrderFromRow_BadJSONSkipped(t *testing.T) {
	_, ok := orderFromRow(fullRow("ord3", "{broken"))
	assert.False(t, ok)

	_, ok = orderFromRow([]interface{}{})
	assert.False(t, ok)

	_, ok = orderFromRow([]interface{}{"ord4", ""})
	assert.False(t, ok)
}
