// Package slugger derives the public URL slug of a job posting.
package slugger

import (
	"fmt"

	"github.com/gosimple/slug"
)

// JobSlug builds "{title}-at-{company}-in-{location}-{id}", lower-cased and
// ASCII-normalized. The trailing id keeps slugs unique even when two
// recruiters post identical titles at the same company and location, so the
// slug is derived once at creation and never recomputed.
func JobSlug(title, companyName, location, id string) string {
	loc := location
	if loc == "" {
		loc = "remote"
	}
	return fmt.Sprintf("%s-at-%s-in-%s-%s",
		slug.Make(title), slug.Make(companyName), slug.Make(loc), id)
}
