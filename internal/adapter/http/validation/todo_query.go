package validation

import (
	"net/url"
	"strconv"
	"strings"

	"todoboard/internal/core/domain"
)

// AllUsers is the sentinel the UI sends when no user filter applies.
const AllUsers = "All Users"

// ParseTodoQuery turns raw query parameters into a TodoQuery. It never
// fails: malformed or unrecognized values are dropped so listing stays
// permissive.
func ParseTodoQuery(values url.Values) domain.TodoQuery {
	var query domain.TodoQuery

	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			query.Page = &page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit >= 1 {
			query.Limit = &limit
		}
	}

	// Any field name is accepted; the store sorts by whatever is given.
	query.SortBy = values.Get("sortBy")

	if raw := values.Get("sortOrder"); raw == string(domain.SortAsc) || raw == string(domain.SortDesc) {
		query.SortOrder = domain.SortOrder(raw)
	}

	if raw := values.Get("priority"); raw != "" {
		if priority := domain.Priority(raw); priority.Valid() {
			query.Priority = &priority
		}
	}

	if raw := values.Get("completed"); raw != "" {
		completed := raw == "true"
		query.Completed = &completed
	}

	if raw := values.Get("tags"); raw != "" {
		query.Tags = strings.Split(raw, ",")
	}

	if raw := values.Get("user"); raw != "" && raw != AllUsers {
		user := raw
		query.User = &user
	}

	if raw := values.Get("search"); raw != "" {
		search := raw
		query.Search = &search
	}

	return query
}
