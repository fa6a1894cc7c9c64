package datemath_test

import (
	"testing"
	"time"

	"smart-task-parser/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	p, err := datemath.NewParser("")
	if err != nil {
		t.Fatalf("unexpected error for local timezone: %v", err)
	}
	if p.Location() != time.Local {
		t.Errorf("expected local location, got %v", p.Location())
	}
}

func TestNow(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	parser, _ := datemath.NewParserWithClock("Asia/Ho_Chi_Minh", datemath.FixedClock(fixed))

	got := parser.Now()
	if !got.Equal(fixed) {
		t.Errorf("Now() = %v, want %v", got, fixed)
	}
	if got.Location().String() != "Asia/Ho_Chi_Minh" {
		t.Errorf("Now() location = %v", got.Location())
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Bare Wednesday (from Wed) is today",
			relative: "wednesday",
			want:     startOfBase,
		},
		{
			name:     "This Friday",
			relative: "this  friday",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "On Sunday",
			relative: "on sunday",
			want:     startOfBase.AddDate(0, 0, 4),
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
		{
			name:     "Unknown expression",
			relative: "some random day",
			want:     baseTime,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayOfMonthOnOrAfter(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name string
		base time.Time
		want time.Time
	}{
		{
			name: "Before the 15th",
			base: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "On the 15th",
			base: time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "After the 15th in December rolls the year",
			base: time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.DayOfMonthOnOrAfter(tt.base, 15)
			if !got.Equal(tt.want) {
				t.Errorf("DayOfMonthOnOrAfter() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	if _, err := parser.Date(2024, time.February, 29); err != nil {
		t.Errorf("unexpected error for leap day: %v", err)
	}
	if _, err := parser.Date(2025, time.February, 29); err == nil {
		t.Errorf("expected error for 29 February 2025")
	}
	if _, err := parser.Date(2025, 13, 1); err == nil {
		t.Errorf("expected error for month 13")
	}
	if _, err := parser.Date(2025, time.June, 0); err == nil {
		t.Errorf("expected error for day 0")
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 8, 12, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
