package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Title   Value[string] `json:"title"`
	Content Value[string] `json:"content"`
}

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantTitle   Value[string]
		wantContent Value[string]
	}{
		{
			name:        "both present",
			body:        `{"title":"김치볶음밥","content":"맛있는 김치볶음밥 만드는 법"}`,
			wantTitle:   Of("김치볶음밥"),
			wantContent: Of("맛있는 김치볶음밥 만드는 법"),
		},
		{
			name:        "content omitted",
			body:        `{"title":"된장찌개"}`,
			wantTitle:   Of("된장찌개"),
			wantContent: None[string](),
		},
		{
			name:        "null is absent",
			body:        `{"title":null,"content":"only content"}`,
			wantTitle:   None[string](),
			wantContent: Of("only content"),
		},
		{
			name:        "empty string is present",
			body:        `{"title":""}`,
			wantTitle:   Of(""),
			wantContent: None[string](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantTitle, p.Title)
			assert.Equal(t, tt.wantContent, p.Content)
		})
	}
}

func TestValue_UnmarshalJSONTypeMismatch(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"title":42}`), &p)
	assert.Error(t, err)
}

func TestValue_Apply(t *testing.T) {
	dst := "unchanged"

	None[string]().Apply(&dst)
	assert.Equal(t, "unchanged", dst)

	Of("changed").Apply(&dst)
	assert.Equal(t, "changed", dst)
}

func TestValue_OrElseAndMarshal(t *testing.T) {
	assert.Equal(t, "fallback", None[string]().OrElse("fallback"))
	assert.Equal(t, "x", Of("x").OrElse("fallback"))

	out, err := json.Marshal(patch{Title: Of("t")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","content":null}`, string(out))
}
