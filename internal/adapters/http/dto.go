package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/app"
)

// OracleResponse is the JSON shape returned by POST /ask_oracle.
type OracleResponse struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// askBody is the loosely-typed POST /ask_oracle body.
type askBody map[string]any

// decodeAskBody never fails: an empty, malformed or non-object body decodes
// to an empty mapping.
func decodeAskBody(raw []byte) askBody {
	var body askBody
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return askBody{}
	}
	return body
}

// field returns the value for key coerced to a string, or fallback when
// the key is missing or null.
func (b askBody) field(key, fallback string) string {
	v, ok := b[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (b askBody) toRequest() app.ConsultRequest {
	return app.ConsultRequest{
		Sign:  b.field("sign", "aries"),
		Day:   b.field("day", "today"),
		Name:  b.field("name", ""),
		DOB:   b.field("dob", ""),
		Crush: strings.TrimSpace(b.field("crush", "")),
		Ex:    strings.TrimSpace(b.field("ex", "")),
	}
}
