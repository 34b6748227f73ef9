// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
)

// PasswordResetEmailData contains the data for a password reset email.
type PasswordResetEmailData struct {
	AppName   string
	ResetURL  string
	ExpiryMin int
}

// PasswordResetEmail generates both plain text and HTML versions of a password reset email.
func PasswordResetEmail(data PasswordResetEmailData) (textBody, htmlBody string) {
	// Plain text version
	textBody = "You requested a password reset for your " + data.AppName + " admin account.\n\n" +
		"Click the link below to reset your password:\n\n" +
		data.ResetURL + "\n\n" +
		"This link will expire in " + itoa(data.ExpiryMin) + " minutes and can only be used once.\n\n" +
		"If you did not request this, you can safely ignore this email."

	// HTML version
	var buf bytes.Buffer
	passwordResetHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// ContactNotificationData contains the data for a contact form notification
// sent to the organization inbox.
type ContactNotificationData struct {
	AppName string
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactNotificationEmail generates both plain text and HTML versions of a
// contact form notification email.
func ContactNotificationEmail(data ContactNotificationData) (textBody, htmlBody string) {
	// Plain text version
	textBody = "A new contact message was submitted on the " + data.AppName + " website.\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n"
	if data.Phone != "" {
		textBody += "Phone: " + data.Phone + "\n"
	}
	textBody += "\nMessage:\n" + data.Message

	// HTML version
	var buf bytes.Buffer
	contactNotificationHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// ConsultNotificationData contains the data for a new consultation request
// notification sent to the organization inbox.
type ConsultNotificationData struct {
	AppName     string
	Name        string
	Email       string
	Phone       string
	ServiceType string
	Message     string
}

// ConsultNotificationEmail generates both plain text and HTML versions of a
// consultation request notification email.
func ConsultNotificationEmail(data ConsultNotificationData) (textBody, htmlBody string) {
	// Plain text version
	textBody = "A new consultation request was submitted on the " + data.AppName + " website.\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n" +
		"Phone: " + data.Phone + "\n"
	if data.ServiceType != "" {
		textBody += "Service: " + data.ServiceType + "\n"
	}
	if data.Message != "" {
		textBody += "\nMessage:\n" + data.Message + "\n"
	}
	textBody += "\nReview it in the admin dashboard."

	// HTML version
	var buf bytes.Buffer
	consultNotificationHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}

var passwordResetHTMLTmpl = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Password Reset</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">Reset Your Password</h2>
              <p style="margin: 0 0 24px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                You requested a password reset for your admin account. Click the button below to create a new password.
              </p>
              <!-- Button -->
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center" style="padding: 8px 0 24px 0;">
                    <a href="{{.ResetURL}}" style="display: inline-block; padding: 14px 32px; background-color: #16a34a; color: #ffffff; text-decoration: none; font-size: 15px; font-weight: 600; border-radius: 6px;">Reset Password</a>
                  </td>
                </tr>
              </table>
              <p style="margin: 0 0 16px 0; font-size: 14px; line-height: 1.6; color: #71717a;">
                This link will expire in <strong>{{.ExpiryMin}} minutes</strong> and can only be used once.
              </p>
              <p style="margin: 0; font-size: 14px; line-height: 1.6; color: #71717a;">
                If you didn't request this password reset, you can safely ignore this email. Your password will remain unchanged.
              </p>
            </td>
          </tr>
          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0 0 8px 0; font-size: 12px; color: #a1a1aa; text-align: center;">
                If the button doesn't work, copy and paste this link into your browser:
              </p>
              <p style="margin: 0; font-size: 12px; color: #16a34a; text-align: center; word-break: break-all;">
                {{.ResetURL}}
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

var contactNotificationHTMLTmpl = template.Must(template.New("contact_notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Contact Message</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New Contact Message</h2>
              <div style="padding: 16px; background-color: #f4f4f5; border-radius: 6px; margin-bottom: 24px;">
                <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                  <tr>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b;"><strong>Name:</strong></td>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b; text-align: right;">{{.Name}}</td>
                  </tr>
                  <tr>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b;"><strong>Email:</strong></td>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b; text-align: right;">{{.Email}}</td>
                  </tr>
                  {{if .Phone}}
                  <tr>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b;"><strong>Phone:</strong></td>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b; text-align: right;">{{.Phone}}</td>
                  </tr>
                  {{end}}
                </table>
              </div>
              <p style="margin: 0 0 8px 0; font-size: 14px; font-weight: 600; color: #18181b;">Message</p>
              <p style="margin: 0; font-size: 14px; line-height: 1.6; color: #52525b; white-space: pre-wrap;">{{.Message}}</p>
            </td>
          </tr>
          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #a1a1aa; text-align: center;">
                This message was submitted through the {{.AppName}} website contact form.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

var consultNotificationHTMLTmpl = template.Must(template.New("consult_notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Consultation Request</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New Consultation Request</h2>
              <div style="padding: 16px; background-color: #f4f4f5; border-radius: 6px; margin-bottom: 24px;">
                <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                  <tr>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b;"><strong>Name:</strong></td>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b; text-align: right;">{{.Name}}</td>
                  </tr>
                  <tr>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b;"><strong>Email:</strong></td>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b; text-align: right;">{{.Email}}</td>
                  </tr>
                  <tr>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b;"><strong>Phone:</strong></td>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b; text-align: right;">{{.Phone}}</td>
                  </tr>
                  {{if .ServiceType}}
                  <tr>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b;"><strong>Service:</strong></td>
                    <td style="padding: 4px 0; font-size: 14px; color: #52525b; text-align: right;">{{.ServiceType}}</td>
                  </tr>
                  {{end}}
                </table>
              </div>
              {{if .Message}}
              <p style="margin: 0 0 8px 0; font-size: 14px; font-weight: 600; color: #18181b;">Message</p>
              <p style="margin: 0 0 24px 0; font-size: 14px; line-height: 1.6; color: #52525b; white-space: pre-wrap;">{{.Message}}</p>
              {{end}}
              <p style="margin: 0; font-size: 14px; line-height: 1.6; color: #71717a;">
                Review this request in the admin dashboard.
              </p>
            </td>
          </tr>
          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #a1a1aa; text-align: center;">
                This request was submitted through the {{.AppName}} website.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))
