package email

import (
	"bytes"
	"html/template"
)

// Templates are compiled once at package load; a broken template is a
// programming error, so Must is fine here.
var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="font-family: sans-serif; max-width: 480px;">
  <h2>Password reset</h2>
  <p>Hi {{.Name}},</p>
  <p>Your one-time password reset code is:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.OTP}}</p>
  <p>The code expires in 10 minutes. If you did not request a reset,
  you can ignore this email.</p>
</div>
`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: sans-serif; max-width: 480px;">
  <h2>Welcome to Trackify</h2>
  <p>Hi {{.Name}},</p>
  <p>Your {{.Role}} account is ready. You can now sign in and start
  tracking complaints.</p>
</div>
`))

func renderOTP(name, otp string) string {
	var buf bytes.Buffer
	_ = otpTemplate.Execute(&buf, map[string]string{"Name": name, "OTP": otp})
	return buf.String()
}

func renderWelcome(name, role string) string {
	var buf bytes.Buffer
	_ = welcomeTemplate.Execute(&buf, map[string]string{"Name": name, "Role": role})
	return buf.String()
}
