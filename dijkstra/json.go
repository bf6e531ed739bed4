package dijkstra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Textual forms of non-finite float distances in JSON, which has no
// literal for them. They match JavaScript's spelling.
const (
	jsonPosInf = "Infinity"
	jsonNegInf = "-Infinity"
	jsonNaN    = "NaN"
)

// MarshalJSON encodes p with finite distances as JSON numbers and
// non-finite float distances as the strings "Infinity", "-Infinity"
// and "NaN".
func (p PredecessorInfo[V, W]) MarshalJSON() ([]byte, error) {
	var dist any = p.Distance
	switch f := float64(p.Distance); {
	case math.IsInf(f, 1):
		dist = jsonPosInf
	case math.IsInf(f, -1):
		dist = jsonNegInf
	case math.IsNaN(f):
		dist = jsonNaN
	}

	return json.Marshal(struct {
		Predecessor V   `json:"predecessor"`
		Distance    any `json:"distance"`
	}{p.Predecessor, dist})
}

// UnmarshalJSON accepts everything MarshalJSON produces.
func (p *PredecessorInfo[V, W]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Predecessor V               `json:"predecessor"`
		Distance    json.RawMessage `json:"distance"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Predecessor = raw.Predecessor

	if !bytes.HasPrefix(bytes.TrimSpace(raw.Distance), []byte(`"`)) {
		return json.Unmarshal(raw.Distance, &p.Distance)
	}

	var s string
	if err := json.Unmarshal(raw.Distance, &s); err != nil {
		return err
	}
	var f float64
	switch s {
	case jsonPosInf:
		f = math.Inf(1)
	case jsonNegInf:
		f = math.Inf(-1)
	case jsonNaN:
		f = math.NaN()
	default:
		return fmt.Errorf("dijkstra: invalid distance %q", s)
	}
	// Integer weights have no non-finite values.
	if !math.IsNaN(float64(W(f))) && float64(W(f)) != f {
		return fmt.Errorf("dijkstra: distance %q does not fit %T", s, p.Distance)
	}
	p.Distance = W(f)

	return nil
}
