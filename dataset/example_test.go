package dataset_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcorr/dataset"
)

func ExampleLoad() {
	in := "Name,Height,Age\nAda,1.65,36\nAlan,1.78,41\n"

	m, err := dataset.Load(strings.NewReader(in), []string{"Age", "Height"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)

	_, err = dataset.Load(strings.NewReader(in), []string{"Weight"})
	fmt.Println(err)
	// Output:
	// [36, 1.65]
	// [41, 1.78]
	// dataset: corrupt file: expected 1 headers, only found 0
}
