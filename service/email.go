// Package service 提供对外部设施的封装：提醒邮件发送与批处理任务。
package service

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"gammabudget/config"
)

// EmailService 邮件服务，实现提醒邮件发送与创建通知两个端口
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendAlertEmail 发送到期提醒邮件，revenue 为拍平后的支出记录
func (s *EmailService) SendAlertEmail(toEmail, message string, revenue map[string]any) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 EMAIL_ENABLED=true")
	}

	subject := "【记账系统】支出到期提醒"
	body := s.generateAlertEmailBody(message, revenue)

	return s.sendEmail(toEmail, subject, body)
}

// NotifyAlertCreated 提醒创建成功后的异步通知，失败只记日志
func (s *EmailService) NotifyAlertCreated(alert map[string]any) {
	if !s.cfg.Enabled {
		return
	}
	toEmail, _ := alert["user_email"].(string)
	message, _ := alert["message"].(string)
	alertDate, _ := alert["alert_date"].(string)
	if toEmail == "" {
		return
	}

	go func() {
		subject := "【记账系统】提醒创建成功"
		body := s.generateAlertCreatedEmailBody(message, alertDate)
		if err := s.sendEmail(toEmail, subject, body); err != nil {
			logrus.Errorf("提醒创建通知邮件发送失败 %s: %v", toEmail, err)
		}
	}()
}

// generateAlertEmailBody 生成到期提醒邮件内容
func (s *EmailService) generateAlertEmailBody(message string, revenue map[string]any) string {
	name, _ := revenue["name"].(string)
	amount, _ := revenue["amount"].(string)
	expirationDate, _ := revenue["expiration_date"].(string)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #dc2626, #b91c1c); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .detail { background: #fef2f2; border-left: 4px solid #dc2626; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .detail p { margin: 0 0 8px; color: #7f1d1d; font-size: 14px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>⏰ 支出到期提醒</h1>
        </div>
        <div class="content">
            <p>%s</p>
            <div class="detail">
                <p>支出项目：<strong>%s</strong></p>
                <p>金额：<strong>%s</strong></p>
                <p>到期日：<strong>%s</strong></p>
            </div>
            <p>请及时处理，避免逾期。</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© 记账系统 - 您的个人财务管理助手</p>
        </div>
    </div>
</body>
</html>
`, message, name, amount, expirationDate)
}

// generateAlertCreatedEmailBody 生成提醒创建成功通知内容
func (s *EmailService) generateAlertCreatedEmailBody(message, alertDate string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 提醒创建成功</h2>
    <p>提醒内容：%s</p>
    <p>提醒日期：%s，届时系统将再次通过邮件通知您。</p>
    <p style="color: #666;">—— 记账系统</p>
</body>
</html>
`, message, alertDate)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
