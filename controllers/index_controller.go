package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Endpoints lists the public routes for the index page.
func Endpoints() []string {
	endpoints := []string{"/api/all - সব আপডেট"}
	for _, feed := range CategoryFeeds {
		endpoints = append(endpoints, "/api"+feed.Path+" - "+feed.Description)
	}
	return append(endpoints,
		"/api/updates/:category - ক্যাটাগরি অনুযায়ী",
		"/api/stats - স্ট্যাটিস্টিক্স",
		"/api/scrape - নতুন ডাটা সংগ্রহ করুন",
		"/api/add (POST) - নতুন আপডেট যোগ করুন",
		"/api/health - সার্ভার হেলথ",
	)
}

func Index(author string) gin.HandlerFunc {
	endpoints := Endpoints()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "🇧🇩 বাংলাদেশ আপডেট API সার্ভার",
			"author":    author,
			"endpoints": endpoints,
		})
	}
}
