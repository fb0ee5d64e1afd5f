package output

import (
	"fmt"
)

// Batch is one output file of the split: the file name and the half-open
// range of code indexes it receives.
type Batch struct {
	Name  string
	Start int
	End   int
}

// Plan splits total codes into files of at most maxLines rows. A single-file
// plan keeps the plain <base><ext> name; a multi-file plan numbers the files
// <base>_1<ext>, <base>_2<ext> and so on.
func Plan(base, ext string, total, maxLines int) []Batch {
	numFiles := (total-1)/maxLines + 1

	batches := make([]Batch, 0, numFiles)

	for i := 0; i < numFiles; i++ {
		name := base + ext
		if numFiles > 1 {
			name = fmt.Sprintf("%s_%d%s", base, i+1, ext)
		}

		end := (i + 1) * maxLines
		if end > total {
			end = total
		}

		batches = append(batches, Batch{
			Name:  name,
			Start: i * maxLines,
			End:   end,
		})
	}

	return batches
}
