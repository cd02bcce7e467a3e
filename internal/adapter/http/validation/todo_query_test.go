package validation_test

import (
	"net/url"
	"testing"

	"todoboard/internal/adapter/http/validation"
	"todoboard/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, raw string) domain.TodoQuery {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return validation.ParseTodoQuery(values)
}

func TestParseTodoQuery_Empty(t *testing.T) {
	query := parseQuery(t, "")

	require.Nil(t, query.Page)
	require.Nil(t, query.Limit)
	require.Empty(t, query.SortBy)
	require.Empty(t, query.SortOrder)
	require.Nil(t, query.Priority)
	require.Nil(t, query.Completed)
	require.Nil(t, query.Tags)
	require.Nil(t, query.User)
	require.Nil(t, query.Search)

	require.Equal(t, 1, query.PageOrDefault())
	require.Equal(t, 10, query.LimitOrDefault())
}

func TestParseTodoQuery_Pagination(t *testing.T) {
	query := parseQuery(t, "page=2&limit=5")
	require.Equal(t, 2, *query.Page)
	require.Equal(t, 5, *query.Limit)

	// Non-numeric and out-of-range values are dropped.
	query = parseQuery(t, "page=abc&limit=0")
	require.Nil(t, query.Page)
	require.Nil(t, query.Limit)
	require.Equal(t, 1, query.PageOrDefault())
	require.Equal(t, 10, query.LimitOrDefault())
}

func TestParseTodoQuery_Sort(t *testing.T) {
	query := parseQuery(t, "sortBy=priority&sortOrder=desc")
	require.Equal(t, "priority", query.SortBy)
	require.Equal(t, domain.SortDesc, query.SortOrder)

	// Any field name passes through; bad sort orders are dropped.
	query = parseQuery(t, "sortBy=whatever&sortOrder=sideways")
	require.Equal(t, "whatever", query.SortBy)
	require.Empty(t, query.SortOrder)
}

func TestParseTodoQuery_Priority(t *testing.T) {
	query := parseQuery(t, "priority=high")
	require.Equal(t, domain.PriorityHigh, *query.Priority)

	query = parseQuery(t, "priority=urgent")
	require.Nil(t, query.Priority)
}

func TestParseTodoQuery_Completed(t *testing.T) {
	query := parseQuery(t, "completed=true")
	require.True(t, *query.Completed)

	// Anything other than the literal "true" behaves as false.
	for _, raw := range []string{"false", "yes", "TRUE", "1"} {
		query = parseQuery(t, "completed="+raw)
		require.NotNil(t, query.Completed)
		require.False(t, *query.Completed)
	}

	query = parseQuery(t, "")
	require.Nil(t, query.Completed)
}

func TestParseTodoQuery_Tags(t *testing.T) {
	query := parseQuery(t, "tags=home,errands,work")
	require.Equal(t, []string{"home", "errands", "work"}, query.Tags)
}

func TestParseTodoQuery_UserSentinel(t *testing.T) {
	query := parseQuery(t, "user=alice")
	require.Equal(t, "alice", *query.User)

	query = parseQuery(t, "user=All+Users")
	require.Nil(t, query.User)
}

func TestParseTodoQuery_Search(t *testing.T) {
	query := parseQuery(t, "search=milk")
	require.Equal(t, "milk", *query.Search)
}
