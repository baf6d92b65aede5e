package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fixify/config"
	"fixify/models"
	"fixify/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderClient enqueues reminder pushes for delayed delivery. It satisfies
// the booking coordinator's ReminderScheduler.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient creates the enqueue side of the reminder queue.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(redisOpt())}
}

// ScheduleReminder queues one reminder push to fire at the given time.
func (c *ReminderClient) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeReminderSend, body)
	_, err = c.client.EnqueueContext(ctx, task, asynq.ProcessAt(at))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"requestId": p.RequestID,
			"fireDate":  p.FireDate,
		}
		if err := notifSvc.SendPushNotification(ctx, p.UserID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
			return err
		}
		return nil
	}
}
