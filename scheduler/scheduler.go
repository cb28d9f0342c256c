package scheduler

import (
	"log"
	"time"

	"ganaderia-app/config"
	"ganaderia-app/mailer"
	"ganaderia-app/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler programa el envio del resumen diario de sacrificios.
type Scheduler struct {
	cron *cron.Cron
	db   *gorm.DB
}

func NewScheduler(db *gorm.DB) *Scheduler {
	return &Scheduler{cron: cron.New(), db: db}
}

func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc(config.ReportSchedule, s.sendDailyReport)
	if err != nil {
		log.Printf("Failed to schedule daily report: %v", err)
		return
	}

	s.cron.Start()
	log.Println("Scheduler started, daily report at:", config.ReportSchedule)
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// sendDailyReport arma y envia el resumen del dia anterior.
func (s *Scheduler) sendDailyReport() {
	ayer := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	svc := services.NewReportService(s.db)
	summary, err := svc.Build(ayer, ayer)
	if err != nil {
		log.Printf("Failed to build daily report: %v", err)
		return
	}

	if summary.TotalDocumentos == 0 {
		log.Println("Daily report: sin sacrificios confirmados, no se envia correo")
		return
	}

	excel := svc.BuildExcel(summary)
	if err := mailer.SendDailySummary(summary, excel); err != nil {
		log.Printf("Failed to send daily report: %v", err)
	}
}
