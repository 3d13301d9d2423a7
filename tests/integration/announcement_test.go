package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/stretchr/testify/assert"
)

func TestAnnouncementLifecycle(t *testing.T) {
	adminToken := loginForTests(t, adminEmail, adminPassword)
	cpvID := createCPVForTests(t, adminToken, "45260000")

	w := doRequest(t, "POST", "/api/announcements", adminToken,
		dto.CreateAnnouncementInput{Title: "Maintenance window", Body: "The portal is down on Saturday"}, http.StatusCreated)
	var created struct {
		Announcement models.Announcement `json:"announcement"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, models.AudienceAll, created.Announcement.Audience)

	// a CPV-scoped announcement for suppliers only
	w = doRequest(t, "POST", "/api/announcements", adminToken,
		dto.CreateAnnouncementInput{Title: "Roofing tender ahead", Body: "Prepare your documents", Audience: "suppliers", CPVCodeID: &cpvID},
		http.StatusCreated)
	var scoped struct {
		Announcement models.Announcement `json:"announcement"`
	}
	decodeBody(t, w, &scoped)

	// supplier holding the code sees both
	holderID := registerSupplierForTests(t, "roofer@suppliers.test", "Roofer SRL", []string{"45260000"})
	approveSupplierForTests(t, adminToken, holderID)
	holderToken := loginForTests(t, "roofer@suppliers.test", "password123")

	w = doRequest(t, "GET", "/api/announcements", holderToken, nil, http.StatusOK)
	var feed struct {
		Announcements []models.Announcement `json:"announcements"`
	}
	decodeBody(t, w, &feed)
	assert.True(t, containsAnnouncement(feed.Announcements, created.Announcement.ID))
	assert.True(t, containsAnnouncement(feed.Announcements, scoped.Announcement.ID))

	// supplier without the code only sees the general one
	strangerID := registerSupplierForTests(t, "stranger@suppliers.test", "Stranger SRL", nil)
	approveSupplierForTests(t, adminToken, strangerID)
	strangerToken := loginForTests(t, "stranger@suppliers.test", "password123")

	w = doRequest(t, "GET", "/api/announcements", strangerToken, nil, http.StatusOK)
	decodeBody(t, w, &feed)
	assert.True(t, containsAnnouncement(feed.Announcements, created.Announcement.ID))
	assert.False(t, containsAnnouncement(feed.Announcements, scoped.Announcement.ID))

	// only admins may publish
	doRequest(t, "POST", "/api/announcements", holderToken,
		dto.CreateAnnouncementInput{Title: "Spam", Body: "Spam"}, http.StatusForbidden)

	// update and delete round-trip
	newTitle := "Maintenance window moved"
	w = doRequest(t, "PUT", fmt.Sprintf("/api/announcements/%d", created.Announcement.ID), adminToken,
		dto.UpdateAnnouncementInput{Title: &newTitle}, http.StatusOK)
	var updated struct {
		Announcement models.Announcement `json:"announcement"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, newTitle, updated.Announcement.Title)

	doRequest(t, "DELETE", fmt.Sprintf("/api/announcements/%d", scoped.Announcement.ID), adminToken, nil, http.StatusOK)
	doRequest(t, "DELETE", fmt.Sprintf("/api/announcements/%d", scoped.Announcement.ID), adminToken, nil, http.StatusNotFound)
}

func containsAnnouncement(items []models.Announcement, id uint) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func TestTaxonomyGuards(t *testing.T) {
	adminToken := loginForTests(t, adminEmail, adminPassword)
	cpvID := createCPVForTests(t, adminToken, "45262000")

	// duplicate code is refused
	doRequest(t, "POST", "/api/cpv", adminToken, dto.CreateCodeInput{Code: "45262000"}, http.StatusBadRequest)

	// a referenced code cannot be deleted
	supplierID := registerSupplierForTests(t, "mason@suppliers.test", "Mason SRL", []string{"45262000"})
	approveSupplierForTests(t, adminToken, supplierID)
	doRequest(t, "DELETE", fmt.Sprintf("/api/cpv/%d", cpvID), adminToken, nil, http.StatusBadRequest)

	// an unused one can
	unusedID := createCPVForTests(t, adminToken, "45262700")
	doRequest(t, "DELETE", fmt.Sprintf("/api/cpv/%d", unusedID), adminToken, nil, http.StatusOK)
}
