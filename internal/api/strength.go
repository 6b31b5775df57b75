// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/gin-gonic/gin"
)

var errMissingPassword = errors.New("password field is required")

type strengthApi struct {
	cache *reportCache
}

func bindPassword(c *gin.Context) (string, bool) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}

	if req.Password == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingPassword.Error()})
		return "", false
	}

	return *req.Password, true
}

func (s *strengthApi) evaluate(c *gin.Context) {
	password, ok := bindPassword(c)
	if !ok {
		return
	}

	res := strength.Evaluate(password)
	c.JSON(http.StatusOK, evaluateResponse{
		Score:  res.Score,
		Level:  res.Level,
		Label:  res.Level.String(),
		Issues: res.Issues,
	})
}

func (s *strengthApi) entropy(c *gin.Context) {
	password, ok := bindPassword(c)
	if !ok {
		return
	}

	bits := strength.Entropy(password)
	c.JSON(http.StatusOK, entropyResponse{Entropy: bits, CrackTime: strength.CrackTime(bits)})
}

func (s *strengthApi) crackTime(c *gin.Context) {
	bits, err := strconv.Atoi(c.Query("bits"))
	if err != nil || bits < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bits must be a non-negative integer"})
		return
	}

	c.JSON(http.StatusOK, crackTimeResponse{Bits: bits, CrackTime: strength.CrackTime(bits)})
}

func (s *strengthApi) report(c *gin.Context) {
	password, ok := bindPassword(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.cache.report(password))
}

// RegisterStrengthApi adds the strength endpoints to the group. The returned func releases
// the report cache and should be called on shutdown.
func RegisterStrengthApi(group *gin.RouterGroup, cacheSize int64) (func(), error) {
	cache, err := newReportCache(cacheSize)
	if err != nil {
		return nil, err
	}

	s := &strengthApi{cache: cache}

	group.POST("/evaluate", s.evaluate)
	group.POST("/entropy", s.entropy)
	group.GET("/crack-time", s.crackTime)
	group.POST("/report", s.report)

	return cache.close, nil
}
