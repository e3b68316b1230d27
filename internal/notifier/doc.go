// Package notifier delivers booking requests to the business.
//
// New picks the provider named by BOOKING_PROVIDER:
//
//   - emailjs: the EmailJS template API (default)
//   - postmark: an HTML email through Postmark
//   - dev: the same email written to DEV_MAIL_DIR
//
// Every provider is wrapped by Logged.
package notifier
