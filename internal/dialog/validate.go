package dialog

import (
	"regexp"
	"strconv"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError is bad user input. Message is shown to the user as is.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: []string{field}, Message: message}
}

// collect merges per-field failures into a single error, one line per field.
type collect struct {
	fields []string
	lines  []string
}

func (c *collect) add(field, message string) {
	c.fields = append(c.fields, field)
	c.lines = append(c.lines, message)
}

func (c *collect) err() error {
	if len(c.lines) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields, Message: strings.Join(c.lines, "\n")}
}

func ValidateEmail(s string) error {
	if !emailRegexp.MatchString(strings.TrimSpace(s)) {
		return invalid("email", "Пошта не валідна!")
	}
	return nil
}

// ParseAge accepts whole years from 1 to 99.
func ParseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || age <= 0 || age >= 100 {
		return 0, invalid("age", "Вік не валідний!")
	}
	return age, nil
}

// ParseHeightWeight reads "<height> <weight>".
func ParseHeightWeight(s string) (height, weight int, err error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return 0, 0, &ValidationError{Fields: []string{"height", "weight"}, Message: "Висота та вага не валідні!"}
	}

	var c collect
	height, hErr := positive(parts[0])
	if hErr != nil {
		c.add("height", "Висота не валідна!")
	}
	weight, wErr := positive(parts[1])
	if wErr != nil {
		c.add("weight", "Вага не валідна!")
	}
	if err := c.err(); err != nil {
		return 0, 0, err
	}
	return height, weight, nil
}

// DataUpdate is a parsed "вік: 21, зріст: 185, вага: 112" message.
type DataUpdate struct {
	Age    int
	Height int
	Weight int
}

// ParseDataUpdate requires all three keys; when any is missing or invalid the
// whole update is rejected.
func ParseDataUpdate(s string) (DataUpdate, error) {
	pairs := splitPairs(s, ":", func(key, value string) (string, string) { return key, value })

	var (
		u DataUpdate
		c collect
	)

	if age, err := ParseAge(pairs["вік"]); err != nil {
		c.add("age", "Вік не валідний!")
	} else {
		u.Age = age
	}
	if height, err := positive(pairs["зріст"]); err != nil {
		c.add("height", "Зріст не валідний!")
	} else {
		u.Height = height
	}
	if weight, err := positive(pairs["вага"]); err != nil {
		c.add("weight", "Вага не валідна!")
	} else {
		u.Weight = weight
	}

	if err := c.err(); err != nil {
		return DataUpdate{}, err
	}
	return u, nil
}

// sizeFields are the size-update labels in models.Measurement.Values order.
var sizeFields = [6]struct {
	label   string
	message string
}{
	{"груди", "Груди не валідні!"},
	{"талія", "Талія не валідна!"},
	{"бедра", "Бедра не валідні!"},
	{"біцепс руки", "Біцепс руки не валідний!"},
	{"біцепс ноги", "Біцепс ноги не валідний!"},
	{"ікра", "Ікра не валідна!"},
}

// ParseSizeUpdate reads "108 - груди, 105 - талія, ..." into the six sizes in
// chest, waist, hips, arm, leg, calf order. All six labels are required.
func ParseSizeUpdate(s string) ([6]int, error) {
	// "value - label": the label is the key.
	pairs := splitPairs(s, "-", func(left, right string) (string, string) { return right, left })

	var (
		sizes [6]int
		c     collect
	)
	for i, f := range sizeFields {
		v, err := positive(pairs[f.label])
		if err != nil {
			c.add(f.label, f.message)
			continue
		}
		sizes[i] = v
	}

	if err := c.err(); err != nil {
		return [6]int{}, err
	}
	return sizes, nil
}

// splitPairs splits "a<sep>b, c<sep>d" on commas and then on the first sep.
// order picks (key, value) out of (left, right). Keys are lower-cased.
func splitPairs(s, sep string, order func(left, right string) (string, string)) map[string]string {
	pairs := make(map[string]string)
	for _, chunk := range strings.Split(s, ",") {
		left, right, ok := strings.Cut(chunk, sep)
		if !ok {
			continue
		}
		key, value := order(strings.TrimSpace(left), strings.TrimSpace(right))
		key = strings.Join(strings.Fields(strings.ToLower(key)), " ")
		pairs[key] = value
	}
	return pairs
}

func positive(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
