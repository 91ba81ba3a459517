package intake

import (
	"fmt"
	"strconv"

	"github.com/mon-refugee/membership-api/internal/models"
)

// BuildFamily assembles the flat fam_{i}_* form fields into an ordered
// record list. count is the raw family_members form value; anything
// that does not parse as an integer counts as zero. Records are indexed
// 1..N in submission order. Missing fields default to the empty string,
// except vulnerability which defaults to "N/A". Member dates are
// normalized here; a count larger than the fields actually submitted
// simply yields trailing records of defaults.
func BuildFamily(count string, get func(key string) string) []models.FamilyMember {
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		n = 0
	}

	family := make([]models.FamilyMember, 0, n)
	for i := 1; i <= n; i++ {
		field := func(name string) string {
			return get(fmt.Sprintf("fam_%d_%s", i, name))
		}
		vulnerability := field("vulnerability")
		if vulnerability == "" {
			vulnerability = "N/A"
		}
		family = append(family, models.FamilyMember{
			FullName:      field("fullname"),
			FatherName:    field("father_name"),
			MotherName:    field("mother_name"),
			Email:         field("email"),
			Phone:         field("phone"),
			Phone2:        field("phone2"),
			Country:       field("country"),
			Ethnicity:     field("ethnicity"),
			Religion:      field("religion"),
			Gender:        field("gender"),
			DOB:           DisplayDate(field("dob")),
			Arrival:       DisplayDate(field("arrival")),
			AddressState:  field("address_state"),
			Vulnerability: vulnerability,
		})
	}
	return family
}
