package notification

import "github.com/nicksnyder/go-i18n/v2/i18n"

const (
	msgHelpRequestTitle      = "notification.help_request.title"
	msgHelpRequestMessage    = "notification.help_request.message"
	msgHelpResponseTitle     = "notification.help_response.title"
	msgHelpResponseMessage   = "notification.help_response.message"
	msgHelpCompletedTitle    = "notification.help_completed.title"
	msgHelpCompletedMessage  = "notification.help_completed.message"
	msgHelpCancelledTitle    = "notification.help_cancelled.title"
	msgHelpCancelledMessage  = "notification.help_cancelled.message"
	msgHelpUpdatedTitle      = "notification.help_updated.title"
	msgHelpUpdatedMessage    = "notification.help_updated.message"
	msgCommunityAdminTitle   = "notification.community_admin.title"
	msgCommunityAdminMessage = "notification.community_admin.message"

	msgPushRequestTitle   = "push.help_request.title"
	msgPushRequestBody    = "push.help_request.body"
	msgPushResponseTitle  = "push.help_response.title"
	msgPushResponseBody   = "push.help_response.body"
	msgPushCompletedTitle = "push.help_completed.title"
	msgPushCompletedBody  = "push.help_completed.body"
	msgPushCancelledTitle = "push.help_cancelled.title"
	msgPushCancelledBody  = "push.help_cancelled.body"
	msgPushUpdatedTitle   = "push.help_updated.title"
	msgPushUpdatedBody    = "push.help_updated.body"
	msgPushAdminTitle     = "push.community_admin.title"
	msgPushAdminBody      = "push.community_admin.body"
)

// Messages are the built-in English texts of every notification
var Messages = []*i18n.Message{
	{ID: msgHelpRequestTitle, Other: "{{.Icon}}{{.Title}} Help Needed"},
	{ID: msgHelpRequestMessage, Other: "{{.Name}} needs {{.LowerTitle}} help: {{.Description}}"},
	{ID: msgHelpResponseTitle, Other: "👋 Someone Wants to Help!"},
	{ID: msgHelpResponseMessage, Other: "{{.Name}} responded to your {{.Title}} help request"},
	{ID: msgHelpCompletedTitle, Other: "✅ Help Request Completed"},
	{ID: msgHelpCompletedMessage, Other: "The {{.Title}} help request has been completed by {{.Name}}"},
	{ID: msgHelpCancelledTitle, Other: "❌ Help Request Cancelled"},
	{ID: msgHelpCancelledMessage, Other: "The {{.Title}} help request has been cancelled by {{.Name}}"},
	{ID: msgHelpUpdatedTitle, Other: "📝 Help Request Updated"},
	{ID: msgHelpUpdatedMessage, Other: "The {{.Title}} help request status changed to {{.Status}}"},
	{ID: msgCommunityAdminTitle, Other: "🛡️ {{.Community}} Moderation"},
	{ID: msgCommunityAdminMessage, Other: "{{.Admin}} {{.Action}} {{.User}}"},

	{ID: msgPushRequestTitle, Other: "New Help Request: {{.Title}}"},
	{ID: msgPushRequestBody, Other: "{{.Name}} needs help in {{.Location}}"},
	{ID: msgPushResponseTitle, Other: "Someone responded to your help request!"},
	{ID: msgPushResponseBody, Other: "{{.Name}} wants to help with {{.Title}}"},
	{ID: msgPushCompletedTitle, Other: "Help Request Completed!"},
	{ID: msgPushCompletedBody, Other: "Your {{.Title}} request has been marked as completed"},
	{ID: msgPushCancelledTitle, Other: "Help Request Cancelled"},
	{ID: msgPushCancelledBody, Other: "Your {{.Title}} request has been cancelled"},
	{ID: msgPushUpdatedTitle, Other: "Help Request Updated"},
	{ID: msgPushUpdatedBody, Other: "Your {{.Title}} request status has been updated to {{.Status}}"},
	{ID: msgPushAdminTitle, Other: "{{.Community}} Moderation"},
	{ID: msgPushAdminBody, Other: "{{.Admin}} {{.Action}} {{.User}}"},
}
