// file: services/notify_service.go
package services

import (
	"log"
	"time"

	"hatch/metrics"
)

// welcomeJob is one queued "you were added to a team" notification.
type welcomeJob struct {
	Email       string
	CreatorName string
	Attempts    int
}

const (
	welcomeQueueSize  = 256
	welcomeMaxRetries = 3
	welcomeRetryDelay = 30 * time.Second
)

var welcomeQueue = make(chan welcomeJob, welcomeQueueSize)

// welcomeSender is swapped out in tests.
var welcomeSender = SendTeamWelcomeEmail

// QueueTeamWelcome hands a welcome email to the background dispatcher.
// Registration never blocks or fails on notification problems; a full
// queue drops the job with a log line.
func QueueTeamWelcome(email, creatorName string) {
	select {
	case welcomeQueue <- welcomeJob{Email: email, CreatorName: creatorName}:
	default:
		log.Printf("Welcome email queue full, dropping notification for %s", email)
		metrics.EmailsFailed.Inc()
	}
}

// StartNotifier runs the dispatcher loop. Failed sends are retried a
// bounded number of times, then given up on with a log line; delivery
// problems never propagate back to the request path.
func StartNotifier() {
	go func() {
		for job := range welcomeQueue {
			err := welcomeSender(job.Email, job.CreatorName)
			if err == nil {
				metrics.EmailsSent.Inc()
				continue
			}
			job.Attempts++
			if job.Attempts < welcomeMaxRetries {
				log.Printf("Welcome email to %s failed (attempt %d): %v", job.Email, job.Attempts, err)
				go func(j welcomeJob) {
					time.Sleep(welcomeRetryDelay)
					select {
					case welcomeQueue <- j:
					default:
						log.Printf("Welcome email queue full, dropping retry for %s", j.Email)
						metrics.EmailsFailed.Inc()
					}
				}(job)
				continue
			}
			log.Printf("Giving up on welcome email to %s: %v", job.Email, err)
			metrics.EmailsFailed.Inc()
		}
	}()
}
