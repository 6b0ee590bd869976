package command

// iqBand maps a rating below upper (exclusive) to its commentary.
type iqBand struct {
	upper int
	text  string
}

var iqBands = []iqBand{
	{25, "have a profound mental disability. Idiot!"},
	{40, "have a severe mental disability. Idiot!"},
	{55, "have a moderate mental disability. Idiot!"},
	{70, "have a mild mental disability. Idiot!"},
	{85, "have a borderline mental disability. Idiot!"},
	{115, "have average intelligence. Typical puny brained human!"},
	{130, "are above average. But only for a puny brained human!"},
	{145, "are moderately gifted. But not gifted enough, puny brained human!"},
	{160, "are highly gifted. But only for a puny brained human!"},
	{180, "are exceptionally gifted. But only for a puny brained human!"},
}

// DescribeIQ returns the commentary for an assigned rating.
func DescribeIQ(iq int) string {
	for _, band := range iqBands {
		if iq < band.upper {
			return band.text
		}
	}
	return "are profoundly gifted. Impressive, human. Perhaps you will be a worthy rival for the Great Brainiac."
}
