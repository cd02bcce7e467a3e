package apierrors

const (
	MsgTitleRequired       = "titleRequired"
	MsgInvalidPriority     = "invalidPriority"
	MsgNoteContentRequired = "noteContentRequired"
	MsgUserFieldsRequired  = "userFieldsRequired"
	MsgUserExists          = "userExists"
	MsgInvalidPayload      = "invalidPayload"
	MsgTodoNotFound        = "todoNotFound"
	MsgFailListTodos       = "failListTodos"
	MsgFailFetchTodo       = "failFetchTodo"
	MsgFailCreateTodo      = "failCreateTodo"
	MsgFailUpdateTodo      = "failUpdateTodo"
	MsgFailDeleteTodo      = "failDeleteTodo"
	MsgFailAddNote         = "failAddNote"
	MsgFailExportTodos     = "failExportTodos"
	MsgFailListUsers       = "failListUsers"
	MsgFailCreateUser      = "failCreateUser"
)
