package order

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func mustDecode(t *testing.T, doc string) Order {
	t.Helper()
	var o Order
	if err := json.Unmarshal([]byte(doc), &o); err != nil {
		t.Fatalf("decode %s: %v", doc, err)
	}
	return o
}

func TestFilterTodayAcrossTimestampEncodings(t *testing.T) {
	// Fixed local noon keeps the day boundaries away from the offsets.
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	today := now.Add(-1 * time.Hour)
	yesterday := now.Add(-26 * time.Hour)

	cases := []struct {
		name string
		doc  func(ts time.Time, code string) string
	}{
		{"iso string", func(ts time.Time, code string) string {
			return fmt.Sprintf(`{"orderCode":%q,"items":[],"createdAt":%q}`, code, ts.UTC().Format(time.RFC3339))
		}},
		{"native seconds object", func(ts time.Time, code string) string {
			return fmt.Sprintf(`{"orderCode":%q,"items":[],"createdAt":{"seconds":%d,"nanoseconds":0}}`, code, ts.Unix())
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := []Order{
				mustDecode(t, tc.doc(today, "TODAY123")),
				mustDecode(t, tc.doc(yesterday, "YDAY4567")),
			}
			got := FilterToday(orders, now)
			if len(got) != 1 || got[0].Code != "TODAY123" {
				t.Fatalf("got %+v, expected exactly the today order", got)
			}
		})
	}
}

func TestFilterTodayExcludesMalformedCreatedAt(t *testing.T) {
	orders := []Order{
		mustDecode(t, `{"orderCode":"BAD00001","items":[],"createdAt":"not a timestamp"}`),
		mustDecode(t, `{"orderCode":"MISSING1","items":[]}`),
	}
	if got := FilterToday(orders, time.Now()); len(got) != 0 {
		t.Fatalf("got %+v, expected none", got)
	}
}

func TestFilterTodayPreservesInputOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	orders := []Order{
		{Code: "B", CreatedAt: At(now.Add(-time.Minute))},
		{Code: "A", CreatedAt: At(now.Add(-2 * time.Hour))},
	}
	got := FilterToday(orders, now)
	if len(got) != 2 || got[0].Code != "B" || got[1].Code != "A" {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestTimestampDecodeEpochNumber(t *testing.T) {
	var o Order
	doc := fmt.Sprintf(`{"orderCode":"EPOCH001","items":[],"createdAt":%d}`, time.Now().Unix())
	if err := json.Unmarshal([]byte(doc), &o); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := o.CreatedAt.Time(); !ok {
		t.Fatal("epoch-number createdAt should decode")
	}
}

func TestTimestampMarshalRoundTrip(t *testing.T) {
	ts := At(time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC))
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, ok := back.Time()
	if !ok || !got.Equal(time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("round trip lost the instant: %v ok=%v", got, ok)
	}

	var null Timestamp
	b, err = json.Marshal(null)
	if err != nil || string(b) != "null" {
		t.Fatalf("invalid timestamp should marshal to null, got %s err=%v", b, err)
	}
}
