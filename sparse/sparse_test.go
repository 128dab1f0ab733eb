package sparse

import "testing"

func TestMatrixSetAndGet(t *testing.T) {
	M := New(10, 10, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("Expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != -1 {
		t.Errorf("Expected M(3,2) to be the null value, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("Expected value count of 1, is %d", M.ValueCount())
	}
}

func TestMatrixOverwrite(t *testing.T) {
	M := New(4, 4, DefaultNullValue)
	M.Set(1, 1, 100)
	M.Set(1, 1, 200)
	if v := M.Value(1, 1); v != 200 {
		t.Errorf("Expected overwritten value 200, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("Expected value count of 1 after overwrite, is %d", M.ValueCount())
	}
}

func TestMatrixInsertionOrder(t *testing.T) {
	M := New(8, 8, -1)
	// insert out of (row,col) order to exercise the sorted insert
	points := [][3]int32{{5, 5, 1}, {0, 0, 2}, {5, 4, 3}, {2, 7, 4}, {5, 6, 5}}
	for _, p := range points {
		M.Set(int(p[0]), int(p[1]), p[2])
	}
	for _, p := range points {
		if v := M.Value(int(p[0]), int(p[1])); v != p[2] {
			t.Errorf("Expected M(%d,%d) = %d, is %d", p[0], p[1], p[2], v)
		}
	}
	if M.ValueCount() != len(points) {
		t.Errorf("Expected %d values, have %d", len(points), M.ValueCount())
	}
}
