package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// handleExportUsers streams the current user snapshot as an XLSX workbook.
// The export reflects the snapshot the table shows, so no backend call
// happens here beyond an initial load.
func (h *Handlers) handleExportUsers(c *gin.Context) {
	if h.tokenFrom(c) == "" {
		sendErrorResponse(c, http.StatusUnauthorized, "Admin authentication required")
		return
	}

	if err := h.ensureUsersLoaded(c); err != nil {
		status, message := proxyStatus(err)
		sendErrorResponse(c, status, message)
		return
	}
	users, loadedAt, _ := h.users.Snapshot()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Full Name", "Email", "Active", "Admin", "Plan", "Usage", "Usage Level", "Last Login", "Created"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	for row, u := range users {
		values := []interface{}{
			u.FullName,
			u.Email,
			u.IsActive,
			u.AdminAllowed,
			u.PlanStatusDisplay(),
			u.UserUsage,
			u.UsageLabel(),
			u.LastLogin,
			u.CreatedAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("users-%s.xlsx", loadedAt.Format("2006-01-02"))
	if loadedAt.IsZero() {
		filename = fmt.Sprintf("users-%s.xlsx", time.Now().Format("2006-01-02"))
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		debugLog("export: write workbook: %v", err)
	}
}

// ensureUsersLoaded performs the first snapshot load on demand.
func (h *Handlers) ensureUsersLoaded(c *gin.Context) error {
	users, loadedAt, _ := h.users.Snapshot()
	if len(users) > 0 || !loadedAt.IsZero() {
		return nil
	}
	return h.users.Load(c.Request.Context())
}
