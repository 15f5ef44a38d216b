package session

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// ---------------------------------------------------------------------------
// Report formatting. Pure text builders over the stats structures.
// ---------------------------------------------------------------------------

func formatDashboard(d *domain.Dashboard) string {
	var b strings.Builder
	b.WriteString("📊 Tableau de bord\n\n")
	fmt.Fprintf(&b, "Relevés : %d (dont %d ces dernières 24h)\n", d.TotalEntries, d.Entries24h)
	fmt.Fprintf(&b, "Objets : %d — cassés %d (%.2f%%), bons %d (%.2f%%)\n",
		d.TotalItems, d.TotalBroken, d.BrokenPct, d.TotalGood, d.GoodPct)
	fmt.Fprintf(&b, "Salles : %d — Matériels : %d — Utilisateurs actifs : %d\n",
		d.RoomCount, d.MaterialCount, d.ActiveUsers)

	if len(d.ProblematicRooms) > 0 {
		b.WriteString("\n🚨 Salles les plus problématiques :\n")
		for i, r := range d.ProblematicRooms {
			fmt.Fprintf(&b, "%d. %s — %d/%d cassés (%.2f%%)\n", i+1, r.Room, r.Broken, r.Total, r.BrokenPct)
		}
	}

	if len(d.TopMaterials) > 0 {
		b.WriteString("\n🏆 Matériels les plus suivis :\n")
		for i, m := range d.TopMaterials {
			fmt.Fprintf(&b, "%d. %s %s — %d relevés (%d objets, %d cassés)\n",
				i+1, m.Emoji, m.Material, m.Entries, m.Total, m.Broken)
		}
	}

	if len(d.Conditions) > 0 {
		b.WriteString("\n📋 États relevés :\n")
		for _, c := range d.Conditions {
			fmt.Fprintf(&b, "• %s : %d\n", c.Condition, c.Count)
		}
	}

	return b.String()
}

func formatRoomDetail(d *domain.RoomDetail) string {
	if d.EntryCount == 0 {
		return fmt.Sprintf("🏠 %s : aucun relevé pour l'instant.", d.Room)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏠 %s\n\n", d.Room)
	fmt.Fprintf(&b, "Relevés : %d\n", d.EntryCount)
	fmt.Fprintf(&b, "Objets : %d — cassés %d (%.2f%%), bons %d\n", d.Total, d.Broken, d.BrokenPct, d.Good)

	if len(d.Materials) > 0 {
		b.WriteString("\nPar matériel :\n")
		for _, m := range d.Materials {
			fmt.Fprintf(&b, "• %s %s : %d au total, %d cassés, %d bons\n",
				m.Emoji, m.Material, m.Total, m.Broken, m.Good)
		}
	}

	return b.String()
}

func formatLowStock(groups []*domain.LowStockGroup) string {
	if len(groups) == 0 {
		return "✅ Aucun stock faible détecté."
	}

	var b strings.Builder
	b.WriteString("⚠️ Stock faible ou très abîmé :\n\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "• %s / %s — moyenne %.2f, cassés %.2f (%.2f%%)\n",
			g.Room, g.Material, g.AvgTotal, g.AvgBroken, g.BrokenPct)
	}

	return b.String()
}

func formatSearchResults(query string, results []*domain.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("🔍 Aucun relevé ne correspond à « %s ».", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Relevés pour « %s » :\n\n", query)
	for _, r := range results {
		fmt.Fprintf(&b, "• %s — %s / %s : %d au total, %d cassés (%s)\n",
			r.RecordedAt.Format("2006-01-02"), r.Room, r.Material, r.Total, r.Broken, r.Condition)
	}

	return b.String()
}

func formatFeedback(notes []*domain.FeedbackWithUser) string {
	if len(notes) == 0 {
		return "💬 Aucune remarque pour l'instant."
	}

	var b strings.Builder
	b.WriteString("💬 Dernières remarques :\n\n")
	for _, n := range notes {
		fmt.Fprintf(&b, "• %s (%s) : %s\n", n.DisplayName, n.CreatedAt.Format("2006-01-02"), n.Text)
	}

	return b.String()
}
