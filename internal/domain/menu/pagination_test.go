package menu

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{25, 10, 3},
		{20, 10, 2},
		{1, 10, 1},
		{0, 10, 0},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(-3, 0)
	if page != 1 || size != DefaultPageSize {
		t.Fatalf("unexpected defaults %d/%d", page, size)
	}
	if _, size = normalizePage(2, 1000); size != MaxPageSize {
		t.Fatalf("expected page size clamp, got %d", size)
	}
}
