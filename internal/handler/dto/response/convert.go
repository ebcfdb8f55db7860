package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// convert maps a read view onto its response shape by field name.
func convert[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		// views and responses are declared side by side; a failure here is a programming error
		panic(fmt.Sprintf("response mapping %T: %v", src, err))
	}
	return &dst
}
