package response

import (
	"github.com/jinzhu/copier"
)

// copyInto maps a read model onto its response DTO by field name.
// A failure means the two structs drifted apart, which is a programming error.
func copyInto[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic("response mapping failed: " + err.Error())
	}
	return &dst
}

func copyAll[T any, S any](src []S) []*T {
	out := make([]*T, len(src))
	for i := range src {
		out[i] = copyInto[T](src[i])
	}
	return out
}
