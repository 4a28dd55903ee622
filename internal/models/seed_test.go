package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeedRecords(t *testing.T) {
	recs := DefaultSeedRecords()
	require.Len(t, recs, 4)

	handles := make([]string, 0, len(recs))
	emails := map[string]struct{}{}
	for _, r := range recs {
		handles = append(handles, r.Handle)
		emails[r.Email] = struct{}{}
		assert.Equal(t, "ChangeMe123!", r.Password)
	}
	assert.Equal(t, []string{"demo", "alice", "bob", "cora"}, handles)
	assert.Len(t, emails, 4, "emails must be unique")
}

func TestSeedRecord_JSONShape(t *testing.T) {
	b, err := json.Marshal(DefaultSeedRecords()[0])
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"handle": "demo",
		"email": "demo@example.com",
		"display_name": "Demo User",
		"bio": "Hello from PicShare.",
		"password": "ChangeMe123!"
	}`, string(b))
}

func TestSeedRecord_Credentials(t *testing.T) {
	c := DefaultSeedRecords()[1].Credentials()
	assert.Equal(t, Credentials{Email: "alice@example.com", Password: "ChangeMe123!"}, c)
}
