package models

// PurchaseRecord tracks a client-reported payment through the manual
// approval workflow: created pending by the payment callback, flipped to
// completed or rejected only by an admin. The entitlement is granted
// before the status flip, so a failed grant leaves the record pending and
// the approval retriable.
type PurchaseRecord struct {
	ID         string  `dynamodbav:"id" json:"id"`
	UserID     string  `dynamodbav:"userId" json:"userId"`
	UserName   string  `dynamodbav:"userName,omitempty" json:"userName,omitempty"`
	UserEmail  string  `dynamodbav:"userEmail,omitempty" json:"userEmail,omitempty"`
	ItemID     string  `dynamodbav:"itemId" json:"itemId"`
	ItemName   string  `dynamodbav:"itemName" json:"itemName"`
	ItemPrice  float64 `dynamodbav:"itemPrice" json:"itemPrice"`
	PaymentRef string  `dynamodbav:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	Status     string  `dynamodbav:"status" json:"status"`
	CreatedAt  string  `dynamodbav:"createdAt" json:"createdAt"`
}

// PurchasesTable is the DynamoDB table name for purchase records
const PurchasesTable = "Purchases"
