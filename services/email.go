package services

import (
	"fmt"
	"net/smtp"
	"os"
)

func smtpConfig() (from, password, host, port string) {
	from = os.Getenv("SMTP_FROM")
	password = os.Getenv("SMTP_PASSWORD")
	host = os.Getenv("SMTP_HOST")
	port = os.Getenv("SMTP_PORT")
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}
	return
}

// SendBookingEmail gửi email xác nhận đặt phòng
func SendBookingEmail(email string, bookingId uint, roomName string, startDate string, endDate string) error {
	from, password, host, port := smtpConfig()
	to := []string{email}
	subject := "Subject: Đặt phòng thành công\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt phòng thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã đặt phòng thành công.</p>
		<p>Thông tin đặt phòng của bạn như sau:</p>
		<ul>
			<li>Mã đặt phòng: <strong>%d</strong></li>
			<li>Phòng: <strong>%s</strong></li>
			<li>Ngày nhận phòng: <strong>%s</strong></li>
			<li>Ngày trả phòng: <strong>%s</strong></li>
		</ul>
		<p>Chúng tôi sẽ gửi cho bạn thông tin chi tiết khi có sự thay đổi.</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, bookingId, roomName, startDate, endDate)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// SendCancellationEmail gửi email thông báo hủy đặt phòng
func SendCancellationEmail(email string, bookingId uint, roomName string) error {
	from, password, host, port := smtpConfig()
	to := []string{email}
	subject := "Subject: Hủy đặt phòng\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Hủy đặt phòng</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Đặt phòng <strong>%d</strong> cho phòng <strong>%s</strong> của bạn đã được hủy.</p>
		<p>Nếu bạn không yêu cầu hủy, vui lòng liên hệ với chúng tôi.</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, bookingId, roomName)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
