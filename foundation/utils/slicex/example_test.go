package slicex_test

import (
	"fmt"

	"github.com/paisley/rocdate/foundation/utils/slicex"
)

func ExampleChunk() {
	fmt.Println(slicex.Chunk([]int{1, 2, 3, 4, 5, 6, 7, 8}, 3))
	// Output: [[1 2 3] [4 5 6] [7 8]]
}
