package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/twpayne/go-kml"
)

const kmlContentType = "application/vnd.google-earth.kml+xml"

// @Summary Export the simulation map as KML
// @Description Fleet, hospitals, hotspots and active emergencies as KML placemarks
// @Tags System
// @Produce application/vnd.google-earth.kml+xml
// @Success 200 {string} string "KML document"
// @Router /map.kml [get]
func (h *Handler) exportKML(c *gin.Context) {
	log := h.logger.WithField("method", "exportKML")

	snapshot, err := h.dispatchService.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="dispatch-map.kml"`)
	c.Header("Content-Type", kmlContentType)
	c.Status(http.StatusOK)
	if err := snapshotToKML(snapshot).WriteIndent(c.Writer, "", "  "); err != nil {
		log.WithError(err).Error("Failed to write KML")
	}
}

func snapshotToKML(s *models.Snapshot) *kml.CompoundElement {
	fleet := []kml.Element{kml.Name("Fleet")}
	for _, u := range s.Fleet {
		desc := fmt.Sprintf("Status: %s", u.Status)
		if u.Destination != nil {
			desc += fmt.Sprintf("; destination: %s", u.Destination.Name)
		}
		fleet = append(fleet, placemark(u.ID, desc, u.Position))
	}

	hospitals := []kml.Element{kml.Name("Hospitals")}
	for _, hsp := range s.Hospitals {
		hospitals = append(hospitals, placemark(hsp.Name, hsp.Address, hsp.Position))
	}

	hotspots := []kml.Element{kml.Name("Hotspots")}
	for _, hs := range s.Hotspots {
		desc := fmt.Sprintf("Intensity: %.2f (%s)", hs.Intensity, hs.Category)
		hotspots = append(hotspots, placemark(hs.Name, desc, hs.Position))
	}

	emergencies := []kml.Element{kml.Name("Emergencies")}
	for _, em := range s.Emergencies {
		desc := fmt.Sprintf("%s, severity %s, unit %s", em.Type, em.Severity, em.UnitID)
		emergencies = append(emergencies, placemark(em.ID.String(), desc, em.Position))
	}

	return kml.KML(
		kml.Document(
			kml.Name("Emergency dispatch simulation"),
			kml.Folder(fleet...),
			kml.Folder(hospitals...),
			kml.Folder(hotspots...),
			kml.Folder(emergencies...),
		),
	)
}

func placemark(name, description string, p models.Point) *kml.CompoundElement {
	return kml.Placemark(
		kml.Name(name),
		kml.Description(description),
		kml.Point(
			kml.Coordinates(kml.Coordinate{Lon: p.Lng, Lat: p.Lat}),
		),
	)
}
