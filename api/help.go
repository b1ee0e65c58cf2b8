package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neighborly/neighborly-api/apperr"
	"github.com/neighborly/neighborly-api/help"
	"github.com/neighborly/neighborly-api/schema"
)

// askForHelp is the API for asking help from the caller's communities
func (s *Server) askForHelp(c *gin.Context) {
	var params help.CreateInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	h, err := s.lifecycle.Create(c, *currentProfile(c), params)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": h})
}

type helpListParams struct {
	Status      string `form:"status"`
	Type        string `form:"type"`
	RequesterID string `form:"requester_id"`
	Limit       int64  `form:"limit"`
}

func (s *Server) listHelps(c *gin.Context) {
	var params helpListParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	helps, err := s.lifecycle.List(c, schema.HelpRequestFilter{
		Status:      schema.HelpStatus(params.Status),
		Type:        params.Type,
		RequesterID: params.RequesterID,
		Limit:       params.Limit,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": helps})
}

func (s *Server) getHelp(c *gin.Context) {
	h, err := s.lifecycle.Get(c, c.Param("helpID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": h})
}

func queryFloat(c *gin.Context, key string, fields apperr.Fields, required bool) float64 {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		if required {
			fields.Add(key, "required")
		}
		return 0
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fields.Add(key, "must be a number")
		return 0
	}
	return f
}

// nearbyHelps lists the requests around a point, nearest first
func (s *Server) nearbyHelps(c *gin.Context) {
	fields := apperr.Fields{}
	lat := queryFloat(c, "lat", fields, true)
	lng := queryFloat(c, "lng", fields, true)
	radius := queryFloat(c, "radius", fields, false)
	if err := fields.Err(); err != nil {
		abortWithError(c, err)
		return
	}

	helps, err := s.lifecycle.Nearby(c, schema.Location{Latitude: lat, Longitude: lng}, radius, schema.HelpStatus(c.Query("status")))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": helps})
}

// respondHelp offers the caller's help on an open request
func (s *Server) respondHelp(c *gin.Context) {
	var params struct {
		Message string `json:"message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	resp, err := s.lifecycle.Respond(c, *currentProfile(c), c.Param("helpID"), params.Message)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": resp})
}

func (s *Server) acceptResponder(c *gin.Context) {
	result, err := s.lifecycle.AcceptResponder(c, currentProfile(c).ID, c.Param("helpID"), c.Param("responseID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"request":  result.Request,
		"accepted": result.Accepted,
		"ledger":   result.Ledger,
		"xp":       result.XP,
	}})
}

func (s *Server) updateHelpStatus(c *gin.Context) {
	var params struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	result, err := s.lifecycle.UpdateStatus(c, currentProfile(c).ID, c.Param("helpID"), params.Status)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"request":         result.Request,
		"previous_status": result.Previous,
		"ledger":          result.Ledger,
		"xp":              result.XP,
	}})
}

func (s *Server) deleteHelp(c *gin.Context) {
	if err := s.lifecycle.Delete(c, currentProfile(c).ID, c.Param("helpID")); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
