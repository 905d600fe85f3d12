package tindahan

import (
	"encoding/json"
	"testing"
)

func TestJSONObjectWriter(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "{}" {
			t.Errorf("got %s, want {}", got)
		}
	})

	t.Run("ordered fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("qty", 3)
		w.Append("item", "Rice")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		if want := `{"qty":3,"item":"Rice"}`; string(got) != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("optional skips zero values", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("qty", 0)
		w.Optional("manual", false)
		w.Optional("buyer", "Ana")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		if want := `{"qty":0,"buyer":"Ana"}`; string(got) != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("embed merges raw object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("month", "2024-01")
		w.Embed([]byte(`{"salesCount":2}`))
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		if want := `{"month":"2024-01","salesCount":2}`; string(got) != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("embed from value", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("generatedAt", "2024-02-01T00:00:00Z")
		w.EmbedFrom(Totals{
			ItemsTotal:  php(450),
			SalesTotal:  php(60),
			SalesProfit: php(10),
			SalesCount:  1,
		})
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		want := `{"generatedAt":"2024-02-01T00:00:00Z",` +
			`"itemsTotal":{"currency":"PHP","amount":450},` +
			`"salesTotal":{"currency":"PHP","amount":60},` +
			`"salesProfit":{"currency":"PHP","amount":10},` +
			`"salesCount":1}`
		if string(got) != want {
			t.Errorf("got %s,\nwant %s", got, want)
		}
	})

	t.Run("first error sticks", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("bad", func() {}) // funcs do not marshal
		w.Append("later", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected the marshal error to surface")
		}
	})
}

var _ json.Marshaler = (*jsonObjectWriter)(nil)
