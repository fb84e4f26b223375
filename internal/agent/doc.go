// Package agent routes free-text prompts to the assistant's capabilities:
// unread email digests, the day's calendar plan, current weather, and the
// task command engine.
//
// Routing is keyword based and deliberately simple. A prompt mentioning
// "email" goes to Gmail, "schedule" or "plan" to the calendar, "weather"
// to the weather client, and everything else to the task engine. Provider
// failures are folded into the answer text so one broken integration does
// not take the whole briefing down.
package agent
