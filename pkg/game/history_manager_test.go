package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/florodoro/pkg/plants"
)

// TestHistoryAddAndTotals 测试记录累加和统计口径
func TestHistoryAddAndTotals(t *testing.T) {
	gdataManager := newTestGdata(t, "test_history")

	hm, err := NewHistoryManager(gdataManager)
	if err != nil {
		t.Fatalf("NewHistoryManager() error: %v", err)
	}

	p, _ := plants.New(plants.KindGreenTree, rand.New(rand.NewSource(1)))
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC) // 周一

	if err := hm.AddStudy(now, 25, p.Record()); err != nil {
		t.Fatalf("AddStudy() error: %v", err)
	}
	if err := hm.AddStudy(now.Add(time.Hour), 45, nil); err != nil {
		t.Fatalf("AddStudy() error: %v", err)
	}
	if err := hm.AddBreak(now.Add(2*time.Hour), 5); err != nil {
		t.Fatalf("AddBreak() error: %v", err)
	}

	if got := hm.TotalStudyMinutes(); got != 70 {
		t.Errorf("TotalStudyMinutes() = %v, want 70", got)
	}
	if got := hm.TotalBreakMinutes(); got != 5 {
		t.Errorf("TotalBreakMinutes() = %v, want 5", got)
	}
	// 第二条学习禁用了种植，不计入植物数
	if got := hm.PlantsGrown(); got != 1 {
		t.Errorf("PlantsGrown() = %v, want 1", got)
	}
}

// TestHistoryPersistence 测试历史数据持久化往返，植物记录可重建
func TestHistoryPersistence(t *testing.T) {
	gdataManager := newTestGdata(t, "test_history_roundtrip")

	hm, err := NewHistoryManager(gdataManager)
	if err != nil {
		t.Fatalf("NewHistoryManager() error: %v", err)
	}

	p, _ := plants.New(plants.KindCircularFlower, rand.New(rand.NewSource(6)))
	date := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	if err := hm.AddStudy(date, 30, p.Record()); err != nil {
		t.Fatalf("AddStudy() error: %v", err)
	}

	hm2, err := NewHistoryManager(gdataManager)
	if err != nil {
		t.Fatalf("NewHistoryManager() reload error: %v", err)
	}

	studies := hm2.Studies()
	if len(studies) != 1 {
		t.Fatalf("Studies() = %d records, want 1", len(studies))
	}
	if !studies[0].Date.Equal(date) {
		t.Errorf("Date = %v, want %v", studies[0].Date, date)
	}
	if studies[0].Plant == nil {
		t.Fatal("Plant record lost in round trip")
	}

	// 持久化后的植物记录必须能重建出同一株植物
	rebuilt, err := plants.FromRecord(studies[0].Plant)
	if err != nil {
		t.Fatalf("FromRecord() error: %v", err)
	}
	if rebuilt.Kind() != plants.KindCircularFlower {
		t.Errorf("rebuilt Kind = %q, want %q", rebuilt.Kind(), plants.KindCircularFlower)
	}
}

// TestHistoryStudiesSorted 测试学习记录按日期升序返回
func TestHistoryStudiesSorted(t *testing.T) {
	hm, _ := NewHistoryManager(nil)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	hm.AddStudy(base.Add(48*time.Hour), 20, nil)
	hm.AddStudy(base, 10, nil)
	hm.AddStudy(base.Add(24*time.Hour), 15, nil)

	studies := hm.Studies()
	for i := 1; i < len(studies); i++ {
		if studies[i].Date.Before(studies[i-1].Date) {
			t.Fatal("Studies() 未按日期升序排列")
		}
	}
}

// TestWeekdayMinutes 测试按星期统计，索引 0 为周一
func TestWeekdayMinutes(t *testing.T) {
	hm, _ := NewHistoryManager(nil)

	monday := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	hm.AddStudy(monday, 25, nil)
	hm.AddStudy(monday.Add(time.Hour), 25, nil)
	hm.AddStudy(sunday, 40, nil)

	minutes := hm.WeekdayMinutes()
	if minutes[0] != 50 {
		t.Errorf("周一 = %v, want 50", minutes[0])
	}
	if minutes[6] != 40 {
		t.Errorf("周日 = %v, want 40", minutes[6])
	}
	for i := 1; i < 6; i++ {
		if minutes[i] != 0 {
			t.Errorf("星期 %d = %v, want 0", i, minutes[i])
		}
	}
}
