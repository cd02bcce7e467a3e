package db

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"todoboard/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestBuildTodoFilter_Empty(t *testing.T) {
	filter := buildTodoFilter(domain.TodoQuery{})
	require.Equal(t, bson.M{}, filter)
}

func TestBuildTodoFilter_PriorityAndCompleted(t *testing.T) {
	priority := domain.PriorityHigh
	completed := true
	filter := buildTodoFilter(domain.TodoQuery{Priority: &priority, Completed: &completed})

	require.Equal(t, "high", filter["priority"])
	require.Equal(t, true, filter["completed"])
}

func TestBuildTodoFilter_TagsIntersect(t *testing.T) {
	filter := buildTodoFilter(domain.TodoQuery{Tags: []string{"home", "errands"}})
	require.Equal(t, bson.M{"$in": []string{"home", "errands"}}, filter["tags"])
}

func TestBuildTodoFilter_UserScoping(t *testing.T) {
	user := "alice"
	filter := buildTodoFilter(domain.TodoQuery{User: &user})
	require.Equal(t, bson.M{"$eq": "alice"}, filter["assignedUsers"])

	filter = buildTodoFilter(domain.TodoQuery{User: &user, AssignedUsers: []string{"bob"}})
	require.Equal(t, bson.M{"$eq": "alice", "$in": []string{"bob"}}, filter["assignedUsers"])

	filter = buildTodoFilter(domain.TodoQuery{AssignedUsers: []string{"bob"}})
	require.Equal(t, bson.M{"$in": []string{"bob"}}, filter["assignedUsers"])
}

func TestBuildTodoFilter_SearchEscapesPattern(t *testing.T) {
	search := "a+b (urgent)"
	filter := buildTodoFilter(domain.TodoQuery{Search: &search})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	title := or[0].(bson.M)["title"].(primitive.Regex)
	require.Equal(t, `a\+b \(urgent\)`, title.Pattern)
	require.Equal(t, "i", title.Options)

	description := or[1].(bson.M)["description"].(primitive.Regex)
	require.Equal(t, title.Pattern, description.Pattern)
}

func TestBuildTodoSort_DefaultsToCreatedAtDesc(t *testing.T) {
	sort := buildTodoSort(domain.TodoQuery{})
	require.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, sort)
}

func TestBuildTodoSort_ExplicitField(t *testing.T) {
	sort := buildTodoSort(domain.TodoQuery{SortBy: "priority", SortOrder: domain.SortDesc})
	require.Equal(t, bson.D{{Key: "priority", Value: -1}}, sort)

	// Ascending is the fallback direction when sortBy is set.
	sort = buildTodoSort(domain.TodoQuery{SortBy: "title"})
	require.Equal(t, bson.D{{Key: "title", Value: 1}}, sort)
}
