package export

// Layout positions everything on an A4 page, in millimetres.
type Layout struct {
	Left   float64
	Indent float64 // x of continuation lines within a record

	TitleY    float64
	DateY     float64
	TitleSize float64
	BodySize  float64

	Top     float64 // cursor start on every page after the first
	BodyTop float64 // cursor start on the first page, below the header
	Bottom  float64 // once the cursor passes this, the next block starts a page

	LineHeight float64
	RecordGap  float64 // extra advance after each record
}

// DefaultLayout is a single-line-per-record layout.
var DefaultLayout = Layout{
	Left:       20,
	Indent:     25,
	TitleY:     30,
	DateY:      50,
	TitleSize:  20,
	BodySize:   12,
	Top:        30,
	BodyTop:    70,
	Bottom:     280,
	LineHeight: 10,
}

// Line is one piece of text placed on a page.
type Line struct {
	X, Y float64
	Text string
}

type Page struct {
	Lines []Line
}

// Height is the vertical space one record block of n lines takes.
func (l Layout) Height(n int) float64 {
	return float64(n)*l.LineHeight + l.RecordGap
}

// Paginate places record blocks top to bottom. Each block is drawn at the
// cursor, which then advances by its height; a block found with the cursor
// already past Bottom starts a new page with the cursor back at Top. There
// is always at least one page, which also carries the header.
func Paginate(l Layout, blocks [][]string) []Page {
	pages := []Page{{}}
	y := l.BodyTop
	for _, block := range blocks {
		if len(block) == 0 {
			continue
		}
		h := l.Height(len(block))
		cur := &pages[len(pages)-1]
		if y > l.Bottom && len(cur.Lines) > 0 {
			pages = append(pages, Page{})
			cur = &pages[len(pages)-1]
			y = l.Top
		}
		for i, text := range block {
			x := l.Left
			if i > 0 {
				x = l.Indent
			}
			cur.Lines = append(cur.Lines, Line{X: x, Y: y + float64(i)*l.LineHeight, Text: text})
		}
		y += h
	}
	return pages
}
