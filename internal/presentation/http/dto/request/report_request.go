package request

// ReportQueryRequest represents the query parameters shared by report
// endpoints. Dates arrive as YYYY-MM-DD strings and are parsed strictly.
type ReportQueryRequest struct {
	Date      string `form:"date"`
	WeekStart string `form:"week_start"`
	BranchID  string `form:"branch_id"`
}
