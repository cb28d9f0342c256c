package mailer

import (
	"fmt"
	"io"

	"ganaderia-app/config"
	"ganaderia-app/services"
	"ganaderia-app/utils"

	"github.com/xuri/excelize/v2"
	"gopkg.in/gomail.v2"
)

// SendDailySummary envia el resumen del dia con el Excel adjunto a
// los correos configurados.
func SendDailySummary(summary *services.ReportSummary, excel *excelize.File) error {
	if len(config.ReportEmails) == 0 {
		return fmt.Errorf("no report emails configured")
	}

	subject := fmt.Sprintf("Resumen de sacrificios %s", summary.Desde)
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Resumen de sacrificios %s</h3>
				<ul>
					<li>Documentos confirmados: %d</li>
					<li>Animales: %d</li>
					<li>Impuestos oficiales: %s</li>
					<li>Servicio matadero: %s</li>
					<li>Total recaudado: %s</li>
				</ul>
			</body>
		</html>
	`, summary.Desde,
		summary.TotalDocumentos,
		summary.TotalAnimales,
		utils.FormatMoney(summary.TotalOficial),
		utils.FormatMoney(summary.TotalMatadero),
		utils.FormatMoney(summary.TotalRecaudado))

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", config.ReportEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	msg.Attach(
		fmt.Sprintf("sacrificios_%s.xlsx", summary.Desde),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := excel.WriteTo(w)
			return err
		}),
	)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ No se pudo enviar el correo:", err)
		return err
	}

	fmt.Println("✅ Resumen diario enviado a:", config.ReportEmails)
	return nil
}
