package controllers

import (
	"net/http"

	dbpkg "formforge/db"
	"formforge/generation"

	"github.com/gin-gonic/gin"
)

// GetMemories lists the caller's memory snippets. The query vector is empty,
// so every form scores zero and ordering falls back to newest first.
func GetMemories(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "authentication required", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	memories, err := generation.RetrieveRelevantMemories(db, user.ID, nil, 10)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, memories)
}
