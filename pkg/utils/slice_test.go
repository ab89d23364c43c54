package utils_test

import (
	"strconv"
	"testing"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/cmp"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/utils"
)

func TestMap(t *testing.T) {
	t.Run("it maps each element keeping order", func(t *testing.T) {
		actual := utils.Map([]int{3, 1, 4}, strconv.Itoa)
		if !cmp.SliceEq(actual, []string{"3", "1", "4"}) {
			t.Errorf("unmatch: %v", actual)
		}
	})

	t.Run("empty slice maps to empty slice", func(t *testing.T) {
		actual := utils.Map([]int{}, strconv.Itoa)
		if len(actual) != 0 {
			t.Errorf("unmatch: %v", actual)
		}
	})
}

func TestFirst(t *testing.T) {
	t.Run("it returns the first match", func(t *testing.T) {
		v, ok := utils.First([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
		if !ok || v != 2 {
			t.Errorf("unmatch: (%d, %v)", v, ok)
		}
	})

	t.Run("it reports no match", func(t *testing.T) {
		_, ok := utils.First([]int{1, 3}, func(n int) bool { return n%2 == 0 })
		if ok {
			t.Error("found, unexpectedly")
		}
	})
}
