package domain

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// TodoQuery describes filtering, sorting and pagination for list
// operations. Nil pointer fields mean "not specified"; callers apply
// defaults through PageOrDefault/LimitOrDefault.
type TodoQuery struct {
	Page          *int
	Limit         *int
	SortBy        string
	SortOrder     SortOrder
	Priority      *Priority
	Completed     *bool
	Tags          []string
	AssignedUsers []string
	User          *string
	Search        *string
}

func (q TodoQuery) PageOrDefault() int {
	if q.Page == nil || *q.Page < 1 {
		return DefaultPage
	}
	return *q.Page
}

func (q TodoQuery) LimitOrDefault() int {
	if q.Limit == nil || *q.Limit < 1 {
		return DefaultLimit
	}
	return *q.Limit
}
