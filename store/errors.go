package store

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/neighborly/neighborly-api/apperr"
)

const (
	DuplicateKeyCode = 11000
)

var (
	ErrProfileNotFound = apperr.New(apperr.NotFound, 1101, "account not found")

	ErrRequestNotFound          = apperr.New(apperr.NotFound, 1200, "help request not found")
	ErrNotRequestOwner          = apperr.New(apperr.Unauthorized, 1201, "only the owner of the help request can do this")
	ErrRequestNotOpen           = apperr.New(apperr.StateConflict, 1202, "the help request is no longer open")
	ErrDuplicateResponse        = apperr.New(apperr.StateConflict, 1203, "you have already responded to this help request")
	ErrResponseNotFound         = apperr.New(apperr.NotFound, 1204, "response not found")
	ErrRequestNoLongerAvailable = apperr.New(apperr.StateConflict, 1205, "the help request is no longer available")
	ErrInvalidTransition        = apperr.New(apperr.StateConflict, 1206, "the help request cannot move to this status")
	ErrOwnRequest               = apperr.New(apperr.StateConflict, 1207, "you cannot respond to your own help request")

	ErrCommunityNotFound    = apperr.New(apperr.NotFound, 1300, "community not found")
	ErrNotCommunityAdmin    = apperr.New(apperr.Unauthorized, 1301, "only community admins can do this")
	ErrAlreadyMember        = apperr.New(apperr.StateConflict, 1302, "already a member of this community")
	ErrJoinRequestPending   = apperr.New(apperr.StateConflict, 1303, "a join request is already pending")
	ErrJoinRequestNotFound  = apperr.New(apperr.NotFound, 1304, "join request not found")
	ErrNotMember            = apperr.New(apperr.StateConflict, 1305, "the user is not a member of this community")
	ErrBlockedFromCommunity = apperr.New(apperr.Unauthorized, 1306, "you are blocked from this community")
	ErrNotBlocked           = apperr.New(apperr.StateConflict, 1307, "the user is not blocked in this community")

	ErrNotificationNotFound = apperr.New(apperr.NotFound, 1400, "notification not found")

	ErrReportNotFound = apperr.New(apperr.NotFound, 1500, "report not found")
)

func isDuplicateKey(err error) bool {
	switch e := err.(type) {
	case mongo.WriteException:
		for _, we := range e.WriteErrors {
			if we.Code == DuplicateKeyCode {
				return true
			}
		}
	case mongo.BulkWriteException:
		for _, we := range e.WriteErrors {
			if we.Code == DuplicateKeyCode {
				return true
			}
		}
	case mongo.CommandError:
		return e.Code == DuplicateKeyCode
	}
	return false
}
