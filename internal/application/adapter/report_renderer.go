package adapter

// ReportFormat selects the output produced by a ReportRenderer.
type ReportFormat string

const (
	ReportFormatHTML ReportFormat = "html"
	ReportFormatText ReportFormat = "text"
)

// IsValid reports whether f is a supported format.
func (f ReportFormat) IsValid() bool {
	return f == ReportFormatHTML || f == ReportFormatText
}

// ReportHeadings holds the localized captions of a calculation report.
type ReportHeadings struct {
	TotalArea      string
	Owner          string
	Share          string
	OriginalLand   string
	Sold           string
	RemainingLand  string
	RemainingShare string
	Hazari         string
	RemainingTotal string
	SoldTotal      string
	HazariTotal    string
}

// ReportOwner is one owner row of a calculation report.
type ReportOwner struct {
	Name           string
	Share          string
	OriginalLand   string
	Sold           string
	HasSale        bool
	RemainingLand  string
	RemainingShare string
	Hazari         string
}

// CalculationReport is the view model rendered for a calculation.
// Every figure is already formatted.
type CalculationReport struct {
	Lang           string
	Title          string
	AreaUnit       string
	ModeLabel      string
	ModeNote       string
	HazariBase     string
	Headings       ReportHeadings
	TotalArea      string
	Owners         []ReportOwner
	RemainingTotal string
	SoldTotal      string
	HazariTotal    string
	Warning        string
}

// ReportRenderer defines the interface for rendering calculation reports.
type ReportRenderer interface {
	// Render renders report in the given format.
	Render(format ReportFormat, report CalculationReport) (string, error)
}
