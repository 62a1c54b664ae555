package planparse

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []Section
	}{
		{
			name: "two headings",
			in:   "## Day-by-Day Itinerary Outline\nDay 1: Arrive.\n\n## Budget Allocation\nFlights: $500",
			want: []Section{
				{Title: "Day-by-Day Itinerary Outline", Content: "Day 1: Arrive."},
				{Title: "Budget Allocation", Content: "Flights: $500"},
			},
		},
		{
			name: "no heading",
			in:   "Just a plain answer.",
			want: []Section{{Title: DefaultSectionTitle, Content: "Just a plain answer."}},
		},
		{
			name: "empty",
			in:   "   \n\n",
			want: []Section{},
		},
		{
			name: "subheadings stay in content",
			in:   "## Local Tips\n### Transit\nBuy a day pass.",
			want: []Section{{Title: "Local Tips", Content: "### Transit\nBuy a day pass."}},
		},
		{
			name: "preamble before first heading",
			in:   "Here is your plan.\n## Packing List\nUmbrella",
			want: []Section{
				{Title: DefaultSectionTitle, Content: "Here is your plan."},
				{Title: "Packing List", Content: "Umbrella"},
			},
		},
		{
			name: "crlf input",
			in:   "## Trip Overview\r\nThree days in Lisbon.\r\n",
			want: []Section{{Title: "Trip Overview", Content: "Three days in Lisbon."}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitSections(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitSections() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSplitSectionsCountMatchesHeadings(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString("## Heading\nbody line\n### not a split\n")
		}
		if got := len(SplitSections(b.String())); got != n {
			t.Fatalf("%d headings: got %d sections", n, got)
		}
	}
}

func TestJoinSectionsRoundTrip(t *testing.T) {
	t.Parallel()

	in := "## Trip Overview\nA week in Japan.\n\n## Packing List\n- Rain jacket\n- Adapter"
	if got := JoinSections(SplitSections(in)); got != in {
		t.Fatalf("round trip = %q, want %q", got, in)
	}
}

func TestFindSection(t *testing.T) {
	t.Parallel()

	sections := SplitSections("## Trip Overview\nx\n## Budget Allocation\ny")
	s, ok := FindSection(sections, budgetSectionPattern)
	if !ok || s.Content != "y" {
		t.Fatalf("FindSection = %#v, %v", s, ok)
	}
	if _, ok := FindSection(sections, itinerarySectionPattern); ok {
		t.Fatal("expected no itinerary section")
	}
}
