package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

const sentGuardPrefix = "sent#"

// CreateReferral stores a new pending referral. A "sent#<referrer>#<phone>"
// guard item dedupes repeat invitations to the same number.
func (s *Store) CreateReferral(ctx context.Context, referral *models.Referral) (*models.Referral, error) {
	referral.Status = models.ReferralPending
	if referral.CreatedAt.IsZero() {
		referral.CreatedAt = time.Now().UTC()
	}

	referralAV, err := attributevalue.MarshalMap(referral)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal referral: %w", err)
	}

	guardAV, err := attributevalue.MarshalMap(map[string]string{
		"id":          sentGuardPrefix + referral.ReferrerID + "#" + referral.ReferredPhone,
		"referral_id": referral.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal referral guard: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.ReferralsTableName),
					Item:                referralAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.ReferralsTableName),
					Item:                guardAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionalCheckFailure(tce) {
			return nil, fmt.Errorf("referrer %s phone %s: %w", referral.ReferrerID, referral.ReferredPhone, storage.ErrReferralExists)
		}
		return nil, fmt.Errorf("failed to create referral in DynamoDB: %w", err)
	}

	return referral, nil
}

// GetReferral retrieves a referral by its id.
func (s *Store) GetReferral(ctx context.Context, referralID string) (*models.Referral, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": referralID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal referral id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.ReferralsTableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get referral from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("referral %s: %w", referralID, storage.ErrReferralNotFound)
	}

	var referral models.Referral
	if err := attributevalue.UnmarshalMap(result.Item, &referral); err != nil {
		return nil, fmt.Errorf("failed to unmarshal referral: %w", err)
	}

	return &referral, nil
}

// ListReferralsByReferrer retrieves all referrals sent by a user, newest first.
func (s *Store) ListReferralsByReferrer(ctx context.Context, referrerID string) ([]models.Referral, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.ReferralsTableName),
		FilterExpression: aws.String("referrer_id = :referrer_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":referrer_id": &types.AttributeValueMemberS{Value: referrerID},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan referrals table: %w", err)
	}

	var referrals []models.Referral
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &referrals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal referrals: %w", err)
	}

	sort.Slice(referrals, func(i, j int) bool {
		return referrals[i].CreatedAt.After(referrals[j].CreatedAt)
	})

	return referrals, nil
}

// RegisterReferral links the pending referral for a phone number to the newly
// registered user and moves it to registered.
func (s *Store) RegisterReferral(ctx context.Context, phone, userID string) (*models.Referral, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.ReferralsTableName),
		FilterExpression: aws.String("referred_phone = :phone AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone":   &types.AttributeValueMemberS{Value: phone},
			":pending": &types.AttributeValueMemberS{Value: string(models.ReferralPending)},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan referrals table: %w", err)
	}
	if len(result.Items) == 0 {
		return nil, fmt.Errorf("phone %s: %w", phone, storage.ErrReferralNotFound)
	}

	var referral models.Referral
	if err := attributevalue.UnmarshalMap(result.Items[0], &referral); err != nil {
		return nil, fmt.Errorf("failed to unmarshal referral: %w", err)
	}

	update := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ReferralsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: referral.ID},
		},
		UpdateExpression:    aws.String("SET #status = :registered, referred_user_id = :user_id"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":registered": &types.AttributeValueMemberS{Value: string(models.ReferralRegistered)},
			":pending":    &types.AttributeValueMemberS{Value: string(models.ReferralPending)},
			":user_id":    &types.AttributeValueMemberS{Value: userID},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, update); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Raced with another registration of the same phone.
			return nil, fmt.Errorf("phone %s: %w", phone, storage.ErrReferralNotFound)
		}
		return nil, fmt.Errorf("failed to register referral: %w", err)
	}

	referral.Status = models.ReferralRegistered
	referral.ReferredUserID = userID
	return &referral, nil
}

// RedeemReferral conditionally moves a referral from registered to redeemed.
// Racing redeemers serialize here: exactly one update succeeds.
func (s *Store) RedeemReferral(ctx context.Context, referralID string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ReferralsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: referralID},
		},
		UpdateExpression:    aws.String("SET #status = :redeemed"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :registered"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":redeemed":   &types.AttributeValueMemberS{Value: string(models.ReferralRedeemed)},
			":registered": &types.AttributeValueMemberS{Value: string(models.ReferralRegistered)},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("referral %s: %w", referralID, storage.ErrReferralAlreadyRedeemed)
		}
		return fmt.Errorf("failed to redeem referral: %w", err)
	}

	return nil
}
