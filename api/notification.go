package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type notificationListParams struct {
	Limit int64 `form:"limit"`
}

// listNotifications returns the caller's notifications, newest first
func (s *Server) listNotifications(c *gin.Context) {
	var params notificationListParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	notifications, err := s.mongoStore.ListNotifications(c, currentProfile(c).ID, params.Limit)
	if shouldInterupt(err, c) {
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": notifications, "unread": unread})
}

func (s *Server) readNotification(c *gin.Context) {
	err := s.mongoStore.MarkNotificationRead(c, currentProfile(c).ID, c.Param("notificationID"), time.Now())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) readAllNotifications(c *gin.Context) {
	count, err := s.mongoStore.MarkAllNotificationsRead(c, currentProfile(c).ID, time.Now())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"updated": count}})
}
